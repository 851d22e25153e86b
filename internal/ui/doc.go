// Package ui contains the Bubble Tea program that powers the disc menu
// popup. The Model type focuses on message orchestration, while dedicated
// helpers own navigation, input, rendering, and state updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update forwards form-specific messages to the disc-path form when it is
//     active. Otherwise the message is routed through a typed handler registry
//     so each tea.Msg is handled by a focused function.
//   - Navigation helpers (internal/ui/navigation.go) manage the stack of menu
//     levels and keep the underlying menu.Navigator in step with it: one
//     navigator history entry per stacked level. Filter/input helpers
//     (internal/ui/input.go) keep text entry concerns isolated.
//
// State ownership:
//   - Screen state (items, filtering, viewport) lives in internal/ui/state.Level.
//   - The authoritative menu/selection/history state lives in menu.Navigator.
//   - Playlist, stream, and application stores are provided by internal/state
//     and kept in sync by the dispatcher so menu loaders always see current
//     disc data.
//
// Backend interactions:
//   - A backend.Watcher streams disc rescans; Update waits for those events
//     and hands them to applyBackendEvent, which refreshes the stores and any
//     on-screen menus that depend on them. Opening another disc swaps the
//     watcher for a fresh one.
package ui
