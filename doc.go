// Package willowtree drives an interactive collapsible tree diagram: a
// horizontal tidy tree whose nodes fold and unfold on click with animated
// transitions.
//
// # Quick start
//
// Load a tree, build a [Controller] and a [Presenter], and hand the
// presenter to a renderer:
//
//	root, err := willowtree.LoadTreeFile("flare.yaml")
//	if err != nil { ... }
//	cfg := willowtree.DefaultConfig()
//	ctrl, err := willowtree.New(root, cfg.Layout())
//	if err != nil { ... }
//	p := willowtree.NewPresenter(ctrl, cfg)
//
// The scene subpackage draws a presenter in an Ebitengine window. For
// headless output use [WriteSVG], [WritePNG] or [ExportFrames].
//
// # State and transitions
//
// A [State] holds the logical tree, the per-node [NodeVisualState] and the
// layout computed from the attached part of the tree. States are immutable:
// [Reduce] applies one [Action] and returns a new State, or the same one
// when the action has no effect.
//
// Four actions exist. [Open] and [Close] are user intents. [Remove] and
// [Stop] are completion signals sent when a node's animation ends: a node
// that finished fading out is removed by stashing its parent's children,
// and a node that finished moving in is anchored at its parent so the next
// collapse starts from there.
//
// Every relayout stamps a new generation on the laid-out nodes. Completion
// signals carry the generation their animation was started for, and
// signals from an older generation are ignored. This is what keeps a
// half-finished collapse from removing nodes that were reopened meanwhile.
//
// # Controller and presenter
//
// [Controller] owns the current State, applies actions through Reduce and
// notifies subscribers of every new snapshot. [Controller.Toggle] is what a
// click does.
//
// [Presenter] subscribes to a Controller and animates every laid-out node
// and edge with gween tweens. Call [Presenter.Update] once per frame and
// draw [Presenter.Frame]. Finished animations are reported back to the
// controller automatically.
//
// # Layout
//
// [TidyLayout] is the default [LayoutEngine]: a Reingold-Tilford tidy tree
// with depth mapped to X and breadth to Y, cousins spaced twice as far apart
// as siblings. Any other engine can be plugged in with [LayoutFunc].
//
// # Configuration
//
// [Config] holds the viewport, margin, transition duration and easing. It
// can be loaded from YAML with [LoadConfig] and overridden from WILLOWTREE_*
// environment variables with [ConfigFromEnv].
//
// # Live reload
//
// [Watch] follows a tree file on disk and [ApplyReloads] resets a
// controller with the newest valid version from the game loop.
//
// # Debug mode
//
// [Controller.SetDebugMode] logs every dispatched action to stderr. Use
// [Controller.SetLogger] or [WithLogger] to route diagnostics elsewhere.
package willowtree
