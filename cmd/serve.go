package cmd

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mirtools/rolltok/db"
	"github.com/mirtools/rolltok/model"
	"github.com/mirtools/rolltok/roll"
)

var logger = zap.NewNop()

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the encode API",
	Long:  `Serves a JSON API that encodes posted note events into piano rolls`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleEncode(w http.ResponseWriter, r *http.Request) {
	var input model.EncodeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}
	if input.ClipDuration <= 0 {
		writeError(w, 400, "clip_duration must be positive")
		return
	}

	out, err := roll.NewEncoder().Encode(roll.Input{
		Notes:        input.Notes,
		Pedals:       input.Pedals,
		StartTime:    input.StartTime,
		ClipDuration: input.ClipDuration,
	})
	if err != nil {
		writeError(w, 422, err.Error())
		return
	}

	res := model.EncodeResponse{
		OnsetRoll:    out.OnsetRoll,
		OffsetRoll:   out.OffsetRoll,
		FrameRoll:    out.FrameRoll,
		VelocityRoll: out.VelocityRoll,
		ClipNotes:    out.ClipNotes,
	}

	if input.Filename != "" {
		metadatas, err := db.GetRecordingMetadatas([]string{input.Filename})
		if err != nil {
			logger.Warn("metadata lookup failed", zap.String("filename", input.Filename), zap.Error(err))
		} else if m, ok := metadatas[input.Filename]; ok {
			res.Metadata = &m
		}
	}

	json.NewEncoder(w).Encode(res)
}

func serve() {
	logger, _ = zap.NewProduction()
	defer logger.Sync()

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/encode", HandleEncode).Methods("POST")
	handler := cors.Default().Handler(router)

	logger.Info("listening", zap.String("addr", ":8080"))
	log.Fatal(http.ListenAndServe(":8080", handler))
}
