package termview

import "github.com/gdamore/tcell/v2"

// View redraws with draw until a key is pressed or the screen stops
// delivering events. The screen must already be initialised; the caller
// owns Fini.
func View(screen tcell.Screen, draw func(c Canvas)) {
	for {
		screen.Clear()
		draw(screen)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() != tcell.KeyCtrlL {
				return
			}
			screen.Sync()
		}
	}
}
