// Package lua hosts optional Lua hooks for user customization.
//
// The only hook today is breadcrumb formatting: a script defines
//
//	function breadcrumb(display_name, heading)
//	    return display_name .. " / " .. heading
//	end
//
// and the formatter calls it for every zoom. Hook failures fall back to
// the built-in breadcrumb format; a user script can never break zoom.
package lua

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
)

// hookName is the global function a breadcrumb script must define.
const hookName = "breadcrumb"

// BreadcrumbFormatter runs a user Lua hook to format breadcrumb labels.
// It is owned by the editor's update goroutine and is not safe for
// concurrent use.
type BreadcrumbFormatter struct {
	state    *lua.LState
	fallback func(displayName, heading string) string
}

// NewBreadcrumbFormatter compiles the script and verifies it defines the
// breadcrumb hook. The fallback is used whenever the hook errors.
func NewBreadcrumbFormatter(script string, fallback func(displayName, heading string) string) (*BreadcrumbFormatter, error) {
	state := lua.NewState()
	if err := state.DoString(script); err != nil {
		state.Close()
		return nil, fmt.Errorf("loading breadcrumb script: %w", err)
	}
	if state.GetGlobal(hookName).Type() != lua.LTFunction {
		state.Close()
		return nil, fmt.Errorf("breadcrumb script does not define %q", hookName)
	}
	return &BreadcrumbFormatter{state: state, fallback: fallback}, nil
}

// LoadBreadcrumbFormatter reads the script from a file.
func LoadBreadcrumbFormatter(path string, fallback func(displayName, heading string) string) (*BreadcrumbFormatter, error) {
	script, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading breadcrumb script: %w", err)
	}
	return NewBreadcrumbFormatter(string(script), fallback)
}

// Format invokes the hook. On any hook failure, or a non-string return,
// the fallback format is used instead.
func (f *BreadcrumbFormatter) Format(displayName, heading string) string {
	err := f.state.CallByParam(lua.P{
		Fn:      f.state.GetGlobal(hookName),
		NRet:    1,
		Protect: true,
	}, lua.LString(displayName), lua.LString(heading))
	if err != nil {
		return f.fallback(displayName, heading)
	}

	ret := f.state.Get(-1)
	f.state.Pop(1)

	if s, ok := ret.(lua.LString); ok {
		return string(s)
	}
	return f.fallback(displayName, heading)
}

// Close releases the Lua state.
func (f *BreadcrumbFormatter) Close() {
	f.state.Close()
}
