// Command boardsim is a debug CLI for the sensor chessboard interpreter. It
// wires a simulated sensor source, the transition interpreter, and a
// console-printing side channel together, in the spirit of the teacher's
// own console driver and livechess-uci adaptor.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bsalha1/Legal-Chessmove-Detector/pkg/interpreter"
	"github.com/bsalha1/Legal-Chessmove-Detector/pkg/sensor"
	"github.com/bsalha1/Legal-Chessmove-Detector/pkg/sensor/sim"
	"github.com/bsalha1/Legal-Chessmove-Detector/pkg/sidechannel"
	"github.com/bsalha1/Legal-Chessmove-Detector/pkg/board"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

var pollInterval = flag.Duration("poll", 50*time.Millisecond, "sensor poll interval")

func main() {
	flag.Parse()
	ctx := context.Background()

	src := sim.NewSource()
	if err := sensor.ValidateStartPositions(src.Snapshot(ctx)); err != nil {
		logw.Exitf(ctx, "power-up validation failed: %v", err)
	}

	ch := &consoleChannel{}
	in := interpreter.New(ctx, interpreter.WithSideChannel(ch))

	closer := iox.NewAsyncCloser()
	scanner := sensor.NewScanner(src, boardAdapter{in}, sinkAdapter{in})

	go pollLoop(ctx, closer, scanner, *pollInterval)

	logw.Infof(ctx, "boardsim %v ready; commands: move r0 c0 r1 c1 | set r c 0|1 | print | quit", interpreter.Version)
	printBoard(in)

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)

		switch strings.ToLower(parts[0]) {
		case "move":
			if len(parts) != 5 {
				fmt.Println("usage: move r0 c0 r1 c1")
				continue
			}
			r0, c0, r1, c1 := atoi(parts[1]), atoi(parts[2]), atoi(parts[3]), atoi(parts[4])
			src.Move(r0, c0, r1, c1, 5*time.Millisecond)

		case "set":
			if len(parts) != 4 {
				fmt.Println("usage: set r c 0|1")
				continue
			}
			r, c := atoi(parts[1]), atoi(parts[2])
			src.SetCell(r, c, parts[3] == "1")

		case "print", "p":
			printBoard(in)

		case "quit", "exit", "q":
			closer.Close()
			return

		default:
			fmt.Printf("unrecognized command: %v\n", line)
		}
	}
	closer.Close()
}

func pollLoop(ctx context.Context, closer iox.AsyncCloser, scanner *sensor.Scanner, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			scanner.Poll(ctx)
		case <-closer.Closed():
			logw.Infof(ctx, "poll loop stopped")
			return
		}
	}
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func printBoard(in *interpreter.Interpreter) {
	fmt.Println()
	fmt.Println(in.String())
	fmt.Printf("turn: %v\n", in.Turn())
	if entries := in.IllegalSnapshot(); len(entries) > 0 {
		fmt.Println("illegal:")
		for _, e := range entries {
			fmt.Printf("  %v\n", e)
		}
	}
	fmt.Println()
}

// boardAdapter satisfies sensor.BoardState with the interpreter's read-only
// query API, so the scanner never needs direct board access.
type boardAdapter struct {
	in *interpreter.Interpreter
}

func (a boardAdapter) IsPresent(sq board.Square) bool {
	return !a.in.Get(sq).IsEmpty()
}

// sinkAdapter satisfies sensor.Sink by forwarding edges to the interpreter.
type sinkAdapter struct {
	in *interpreter.Interpreter
}

func (a sinkAdapter) Pickup(ctx context.Context, sq board.Square) {
	a.in.Pickup(ctx, sq)
}

func (a sinkAdapter) Place(ctx context.Context, sq board.Square) {
	a.in.Place(ctx, sq)
}

// consoleChannel prints promotion/turn/illegal advisories to stdout.
type consoleChannel struct{}

func (consoleChannel) OnPromotionRequired(ctx context.Context, sq board.Square) {
	fmt.Printf("promotion required at %v (defaulting to queen)\n", sq)
}

func (consoleChannel) PromotionChoice(ctx context.Context, sq board.Square) board.PieceKind {
	return board.Queen
}

func (consoleChannel) OnTurnChanged(ctx context.Context, turn board.Side) {
	fmt.Printf("turn changed: %v to move\n", turn)
}

func (consoleChannel) OnIllegalState(ctx context.Context, entries []board.IllegalEntry) {
	fmt.Printf("illegal state: %d outstanding\n", len(entries))
}

var _ sidechannel.Channel = consoleChannel{}
