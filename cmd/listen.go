package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/mirtools/rolltok/model"
	"github.com/mirtools/rolltok/roll"
	"github.com/mirtools/rolltok/util"
)

var listenWindow float64

func init() {
	listenCmd.Flags().Float64Var(&listenWindow, "window", 10, "rolling clip window in seconds")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Encodes live midi input",
	Long:  `Listens to midi input port 0 and re-encodes a rolling clip window as notes arrive`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

type heldNote struct {
	start    float64
	velocity uint8
}

func reportWindow(notes []model.Note, latest float64) {
	start := latest - listenWindow
	if start < 0 {
		start = 0
	}

	out, err := roll.NewEncoder().Encode(roll.Input{
		Notes:        notes,
		StartTime:    start,
		ClipDuration: listenWindow,
	})
	if err != nil {
		fmt.Printf("encode failed: %v\n", err)
		return
	}

	active := make(map[uint8]bool)
	for _, n := range out.ClipNotes {
		active[n.Pitch] = true
	}
	pitches := util.GetKeys(active)
	sort.Slice(pitches, func(i, j int) bool { return pitches[i] < pitches[j] })
	fmt.Printf("%v notes in window, pitches: %v\n", len(out.ClipNotes), pitches)
}

func listen() {
	defer gomidi.CloseDriver()

	in, err := gomidi.InPort(0)
	if err != nil {
		fmt.Println("can't find a midi input port")
		return
	}

	var notes []model.Note
	var latest float64
	held := make(map[uint8]heldNote)
	debounced := debounce.New(150 * time.Millisecond)

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		seconds := float64(timestampms) / 1000.0
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			held[key] = heldNote{start: seconds, velocity: vel}
		case msg.GetNoteEnd(&ch, &key):
			if h, ok := held[key]; ok {
				notes = append(notes, model.Note{Pitch: key, Velocity: h.velocity, Start: h.start, End: seconds})
				delete(held, key)
			}
		default:
			return
		}
		latest = seconds

		// snapshot under the callback, treating held notes as sounding
		// through the present
		snapshot := append([]model.Note{}, notes...)
		for key, h := range held {
			snapshot = append(snapshot, model.Note{Pitch: key, Velocity: h.velocity, Start: h.start, End: seconds})
		}
		at := latest
		debounced(func() { reportWindow(snapshot, at) })
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	fmt.Println("Listening... ctrl-c to quit")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	stop()
}
