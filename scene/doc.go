// Package scene draws willowtree diagrams with [Ebitengine].
//
// A [Scene] holds a small retained node tree (containers, circles, labels,
// paths and images), routes pointer input to it, and captures screenshots.
// [Scene.AddTreeView] mirrors a [willowtree.Presenter] into that tree: one
// circle and label per tree node, one path per edge. Clicking a node's
// circle toggles it.
//
//	s := scene.NewScene()
//	s.AddTreeView(willowtree.NewPresenter(ctrl, cfg))
//	scene.Run(s, scene.RunConfig{Title: "flare", Width: 960, Height: 500})
//
// # Automated runs
//
// [LoadTestScript] builds a [TestRunner] from a JSON script of clicks,
// toggles, waits and screenshots. Attach it with [Scene.SetTestRunner] and
// set [RunConfig.QuitWhenDone] to exit after the last step:
//
//	{"steps": [
//	  {"action": "screenshot", "label": "initial"},
//	  {"action": "click", "node": "analytics"},
//	  {"action": "wait", "frames": 30},
//	  {"action": "screenshot", "label": "collapsed"}
//	]}
//
// Injected input ([Scene.InjectClick], [Scene.InjectClickNode]) takes
// precedence over the real mouse for the frames it covers.
//
// [Ebitengine]: https://ebitengine.org
package scene
