// Package debug exposes the build-tag controlled debug flag shared by the
// decoder components.
package debug

// Assert panics if condition is false. It is a no-op unless the debug build
// tag is set; hot paths may call it freely.
func Assert(condition bool, message ...string) {
	if !Debug {
		return
	}
	if !condition {
		if len(message) > 0 {
			panic(message[0])
		}
		panic("assertion failed")
	}
}
