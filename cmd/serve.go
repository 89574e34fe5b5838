package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordlab/chord"
	"github.com/jsphweid/chordlab/constants"
	"github.com/jsphweid/chordlab/db"
	"github.com/jsphweid/chordlab/model"
	"github.com/jsphweid/chordlab/session"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var (
	serveAddr       string
	persistSessions bool

	storeMu      sync.Mutex
	sessionStore = make(map[string][]string)

	// rand.Rand isn't safe for concurrent use; kept off storeMu so
	// store traffic doesn't serialize generation
	rngMu    sync.Mutex
	serveRng = rand.New(rand.NewSource(time.Now().UnixNano()))
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", constants.DefaultServeAddr, "listen address")
	serveCmd.Flags().BoolVar(&persistSessions, "persist", false, "also store sessions in DynamoDB")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the practice API",
	Long:  `Serves the practice API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

// toNotes validates wire note numbers into the engine's note type.
func toNotes(nums []int) (model.Notes, bool) {
	notes := make(model.Notes, 0, len(nums))
	for _, num := range nums {
		if num < 0 || num > 127 {
			return nil, false
		}
		notes = append(notes, uint8(num))
	}
	return notes, true
}

func fromNotes(notes model.Notes) []int {
	nums := make([]int, 0, len(notes))
	for _, n := range notes {
		nums = append(nums, int(n))
	}
	return nums
}

func HandleDetect(w http.ResponseWriter, r *http.Request) {
	var input model.DetectRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "Could not parse request body: "+err.Error())
		return
	}
	notes, ok := toNotes(input.Notes)
	if !ok {
		writeError(w, 400, "Note numbers must be within 0-127")
		return
	}

	var res model.DetectResponse
	if c, found := chord.Detect(notes); found {
		name := chord.Name(c)
		res.Chord = &name
	}
	json.NewEncoder(w).Encode(res)
}

func HandleMatch(w http.ResponseWriter, r *http.Request) {
	var input model.MatchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "Could not parse request body: "+err.Error())
		return
	}
	notes, ok := toNotes(input.Notes)
	if !ok {
		writeError(w, 400, "Note numbers must be within 0-127")
		return
	}
	target, ok := chord.Parse(input.Target)
	if !ok {
		writeError(w, 400, "Not a chord name: "+input.Target)
		return
	}

	res := model.MatchResponse{Matches: chord.Matches(notes, target)}
	json.NewEncoder(w).Encode(res)
}

func HandleVoicing(w http.ResponseWriter, r *http.Request) {
	var input model.VoicingRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "Could not parse request body: "+err.Error())
		return
	}
	c, ok := chord.Parse(input.Chord)
	if !ok {
		writeError(w, 400, "Not a chord name: "+input.Chord)
		return
	}
	base := chord.DefaultBase
	if input.Base != nil {
		if *input.Base < 0 || *input.Base > 104 {
			writeError(w, 400, "Base note out of range")
			return
		}
		base = uint8(*input.Base)
	}

	res := model.VoicingResponse{Notes: fromNotes(chord.Voice(c, base))}
	json.NewEncoder(w).Encode(res)
}

func HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	var input model.SessionRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "Could not parse request body: "+err.Error())
		return
	}

	var scaleRoots []uint8
	for _, name := range input.ScaleRoots {
		pc, ok := chord.ParseNoteName(name)
		if !ok {
			writeError(w, 400, "Not a note name: "+name)
			return
		}
		scaleRoots = append(scaleRoots, pc)
	}

	cfg := model.SessionConfig{
		ChordCount:        input.ChordCount,
		Mode:              input.Mode,
		ChordTypeIds:      input.ChordTypeIds,
		ScaleRoots:        scaleRoots,
		IncludeInversions: input.IncludeInversions,
	}

	rngMu.Lock()
	chords, err := session.Generate(cfg, serveRng)
	rngMu.Unlock()
	if err != nil {
		writeError(w, 400, "Could not generate session: "+err.Error())
		return
	}

	names := make([]string, 0, len(chords))
	for _, c := range chords {
		names = append(names, chord.Name(c))
	}

	id := uuid.New().String()
	storeMu.Lock()
	sessionStore[id] = names
	storeMu.Unlock()

	if persistSessions {
		if err := db.SaveSession(id, names); err != nil {
			fmt.Printf("Could not persist session %v: %v\n", id, err)
		}
	}

	json.NewEncoder(w).Encode(model.SessionResponse{Id: id, Chords: names})
}

func HandleGetSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	storeMu.Lock()
	names, ok := sessionStore[id]
	storeMu.Unlock()

	if !ok && persistSessions {
		var err error
		names, ok, err = db.GetSession(id)
		if err != nil {
			writeError(w, 500, "Could not load session: "+err.Error())
			return
		}
	}
	if !ok {
		writeError(w, 404, "No such session: "+id)
		return
	}

	json.NewEncoder(w).Encode(model.SessionResponse{Id: id, Chords: names})
}

func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/detect", HandleDetect).Methods("POST")
	router.HandleFunc("/match", HandleMatch).Methods("POST")
	router.HandleFunc("/voicing", HandleVoicing).Methods("POST")
	router.HandleFunc("/sessions", HandleCreateSession).Methods("POST")
	router.HandleFunc("/sessions/{id}", HandleGetSession).Methods("GET")
	return router
}

func serve() {
	// the web UI lives on another origin
	handler := cors.AllowAll().Handler(NewRouter())
	fmt.Printf("Listening on %v\n", serveAddr)
	log.Fatal(http.ListenAndServe(serveAddr, handler))
}
