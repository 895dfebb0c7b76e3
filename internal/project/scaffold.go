package project

import "fmt"

// DefaultManifest returns the callop.toml content written by `callop init`.
func DefaultManifest(name string) string {
	return fmt.Sprintf(`# callop project manifest
[package]
name = "%s"

[syntax]
# receiver::name sugar for fn.bind(receiver); off by default
bind_this = false

[diagnostics]
max = 20
color = "auto"
`, name)
}

// DefaultMain returns the placeholder entry file written by `callop init`.
func DefaultMain() string {
	return `// greet.call(user) and greet::(user) are the same call.
let greet = make_greeter("hello");
greet::(user, "!");
`
}
