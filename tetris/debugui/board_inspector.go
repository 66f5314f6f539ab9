package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

// BoardInspector shows the outcome, running totals, the falling piece and
// per-row fill counts.
type BoardInspector struct{}

func (bi *BoardInspector) Render(snapshot tetris.Snapshot, outcome tetris.Outcome, totals tetris.Totals) {
	if !imgui.BeginV("Board Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Outcome: %s", outcome))
	imgui.Text(fmt.Sprintf("Games: %d  Pieces: %d  Lines: %d", totals.Games, totals.Pieces, totals.Lines))
	imgui.Text(fmt.Sprintf("Settled Cells: %d", snapshot.Board.Filled()))

	imgui.Separator()
	for _, line := range PieceLines(snapshot.Piece) {
		imgui.BulletText(line)
	}

	if imgui.TreeNodeStr("Rows") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("RowsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Row")
			imgui.TableSetupColumn("Cells")
			imgui.TableSetupColumn("Filled")
			imgui.TableHeadersRow()

			for y := 0; y < tetris.Height; y++ {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", y))
				imgui.TableNextColumn()
				imgui.Text(snapshot.Board.Row(y))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d/%d", snapshot.Board.RowCount(y), tetris.Width))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// PieceLines describes a piece for display.
func PieceLines(p tetris.Piece) []string {
	return []string{
		fmt.Sprintf("Kind: %s", p.Kind),
		fmt.Sprintf("Rotation: %d", p.Rotation),
		fmt.Sprintf("Origin: %s", p.Origin),
		fmt.Sprintf("Tiles: %v", p.Tiles),
	}
}
