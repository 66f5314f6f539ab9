package tetris_test

import (
	"fmt"

	"github.com/plus3/blockfall/tetris"
)

func ExampleEngine() {
	var board tetris.Board
	board.SetRow(18, "#.........")
	board.SetRow(19, "####..####")

	clock := tetris.NewManualClock(0)
	input := tetris.NewScriptedInput()
	engine := tetris.NewEngine[int64](clock, input, tetris.NewSequenceSelector(tetris.ShapeO), nil,
		tetris.WithBoard(board))

	for engine.Outcome() == tetris.Continue && engine.Totals().Pieces == 0 {
		input.Push(tetris.MoveDown)
		engine.Frame()
	}

	snapshot := engine.Snapshot()
	fmt.Println(engine.Outcome(), engine.Totals().Lines)
	fmt.Println(snapshot.Board.Row(18))
	fmt.Println(snapshot.Board.Row(19))
	// Output:
	// continue 1
	// ..........
	// #...##....
}

func ExampleScript_Run() {
	script, err := tetris.ParseScript([]byte(`
name: shuffle
pieces: [T]
frames:
  - input: [MoveLeft, MoveLeft, RotateClockwise]
  - advance: 1001
`))
	if err != nil {
		panic(err)
	}

	result, err := script.Run(nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(result.Outcome, result.Frames)
	fmt.Println(result.Snapshot.Piece.Tiles, result.Snapshot.Piece.Rotation)
	// Output:
	// continue 2
	// [(3,2) (2,1) (2,2) (2,3)] 1
}
