// Package popshot is a single-screen arcade shooter for [Ebitengine].
//
// A ship at the bottom of an 800x600 playfield fires upward projectiles at
// colored circles that bounce off the walls and ceiling. Each kill scores 15
// points. An enemy that reaches the floor or touches the ship costs one of
// ten lives; at zero the session ends, the final score is shown, and a fresh
// session starts once the message is acknowledged.
//
// The rules live in package game and know nothing about rendering. This
// package is the window frontend:
//
//	cfg, err := config.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := popshot.Run(cfg); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, build a [Game] with [NewGame] and pass it to
// [ebiten.RunGame] yourself. Game events flow through a [Donburi] world to
// the audio player, the pop effects (tweened with [gween]) and the
// lifetime records.
//
// # Scripted runs
//
// A JSON test script drives input and captures screenshots without a human
// at the keyboard. See [TestRunner] for the supported actions.
//
//	{"steps": [
//		{"action": "press", "key": "fire", "count": 3},
//		{"action": "wait", "frames": 30},
//		{"action": "screenshot", "label": "volley"},
//		{"action": "quit"}
//	]}
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package popshot
