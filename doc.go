// Package hero is the animation core of an animated landing-page hero
// section, with an [Ebitengine] render surface.
//
// A [Section] turns three input signals (scroll offset, pointer position and
// time) into the visual parameters of every animated layer. Scroll drives a
// bounded progress ratio that scales and fades the 3D scene and the headline.
// The pointer tilts a glow over the scene. Time drives four timelines: the
// staggered headline reveal followed by the subtitle, an endless background
// morph, a rotating status ticker and a pulsing scroll hint that retires on
// the first scroll or after a timeout.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg := hero.DefaultConfig()
//	section := hero.NewSection(cfg)
//	painter := hero.NewPainter(cfg, &hero.PlaceholderWidget{SceneURL: url})
//	hero.Run(section, painter, hero.RunConfig{Title: "Hero", Width: 1280, Height: 720})
//
// For full control, drive a Section with your own [Clock]:
//
//	clock := hero.NewClock()
//	section.Mount(clock, 1280, 720)
//	defer section.Unmount()
//
//	// every frame:
//	clock.Advance(dt)
//	frame := section.Frame()
//
// # Clock and drivers
//
// Everything is single-threaded. Time only moves when [Clock.Advance] is
// called, and timers fire synchronously inside it. Periodic drivers (the
// ticker interval, the background and hint loops) are registered on the clock
// when the section mounts and are all released by [Section.Unmount];
// [Clock.Active] reports how many are still running.
//
// # Timelines
//
// A [Timeline] is a value: delay, duration, easing (a [gween] ease function)
// and a [RepeatPolicy]. It is sampled by elapsed time rather than stepped, so
// ordering between timelines, such as the subtitle starting only after the
// last headline line, is expressed purely through start offsets.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package hero
