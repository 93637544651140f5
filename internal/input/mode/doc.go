// Package mode provides the two-state modal controller.
//
// A page is always in one of two modes:
//   - Normal mode: keys drive focus navigation and are swallowed
//   - Insert mode: keys reach the focused element untouched
//
// # Architecture
//
// The Controller is an explicitly owned state object. It is constructed once
// at startup, handed to the dispatcher and threaded through every action.
// There is no package-level mode state.
//
// # Mode Lifecycle
//
//	┌─────────┐   mode.insert   ┌─────────┐
//	│ normal  │ ──────────────▶ │ insert  │
//	└─────────┘                 └─────────┘
//	     ▲                           │
//	     └──────── mode.normal ──────┘
//
// Only bound actions switch modes. Change callbacks run after the switch.
package mode
