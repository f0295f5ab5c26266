// Package multitouch routes concurrent touches to the scene elements they
// started on, so several elements can be dragged at once by independent
// fingers (or by the mouse, routed as a touch).
//
// # Router
//
// [Router] is the core. Register elements with a [Handlers] set; feed it
// batches of [TouchPoint] records from any input source:
//
//	router := multitouch.NewRouter(picker)
//	router.Register(group, multitouch.Handlers{
//		OnStart: func(t multitouch.TouchPoint, d *multitouch.GestureData) {
//			d.Set("dx", group.X-d.StartX)
//		},
//		OnMove: func(t multitouch.TouchPoint, d *multitouch.GestureData) {
//			group.X = t.X + d.Float("dx")
//		},
//	})
//	router.HandleTouchStart(points)
//
// A touch binds on start to the registered element under it, found with
// the [Picker] and then bubbled up the [Element] parent chain, and stays
// bound until it ends, even if the finger leaves the element. Each
// gesture gets one [GestureData] that every callback of that touch shares.
// Unregistering an element, or destroying the router, ends its live
// touches with a synthetic record (see [TouchPoint].Synthetic).
//
// Handlers that panic are recovered, logged with zerolog and reported as
// [*HandlerError]; the rest of the batch is still processed.
//
// The router is single-threaded and never blocks.
//
// # Scene
//
// [Scene] is a small retained scene graph built around a router: [Node]
// implements [Element], the scene implements [Picker] by hit testing its
// tree, and an [Input] polls [Ebitengine] touches each frame and turns them
// into start/move/end batches.
//
//	scene := multitouch.NewScene()
//	box := multitouch.NewRect("box", 100, 100, multitouch.Color{R: 1, A: 1})
//	scene.Root().AddChild(box)
//	scene.Register(box, handlers)
//	multitouch.Run(scene, multitouch.RunConfig{Title: "demo"})
//
// An optional [Camera] pans and zooms the view; touches are converted to
// world coordinates before they reach the router.
//
// Tweens (via [gween]) ease nodes back after a gesture, scripted touch
// sequences ([LoadTouchScript]) drive tests without a device, and routed
// events can be forwarded to an ECS through [EntityStore] ([Donburi]
// adapter in multitouch/ecs).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package multitouch
