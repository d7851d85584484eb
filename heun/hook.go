package heun

import "github.com/sarchlab/hhsim/hh"

// HookPos defines the enum of possible hooking positions.
type HookPos struct {
	Name string
}

// HookPosSample is a hook position that triggers right after a trajectory
// sample is finalized, including the initial condition at index 0.
var HookPosSample = &HookPos{Name: "Sample"}

// HookPosRunEnd is a hook position that triggers once after the last step,
// with the finished Trajectory as the item.
var HookPosRunEnd = &HookPos{Name: "RunEnd"}

// Sample is the item carried by a HookPosSample invocation.
type Sample struct {
	Index int
	Time  float64
	State hh.State
}

// HookCtx is the context that holds all the information about the site
// where a hook is triggered.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
}

// Hookable defines an object that accepts Hooks.
type Hookable interface {
	// AcceptHook registers a hook.
	AcceptHook(hook Hook)
}

// Hook is a short piece of program that can be invoked by a hookable
// object.
type Hook interface {
	// Func determines what to do if the hook is invoked.
	Func(ctx HookCtx)
}

// A HookableBase provides some utility function for other types that
// implement the Hookable interface.
type HookableBase struct {
	Hooks []Hook
}

// AcceptHook registers a hook.
func (h *HookableBase) AcceptHook(hook Hook) {
	h.Hooks = append(h.Hooks, hook)
}

// InvokeHook triggers the registered Hooks.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.Hooks {
		hook.Func(ctx)
	}
}
