package termview_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navgraph/astar"
	"github.com/katalvlaran/navgraph/termview"
)

func TestView_ReturnsOnKey(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(20, 5)

	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))

	gg := testGrid(t)
	draws := 0
	termview.View(screen, func(c termview.Canvas) {
		draws++
		termview.NewRenderer().Draw(c, gg, termview.Frame{From: 0, To: 2, Kind: astar.Partial})
	})

	require.GreaterOrEqual(t, draws, 1)
	mainc, _, _, _ := screen.GetContent(0, 0)
	require.Equal(t, 'S', mainc)
	mainc, _, _, _ = screen.GetContent(1, 0)
	require.Equal(t, '#', mainc)
}
