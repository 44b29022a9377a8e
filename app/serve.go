package app

import (
	"net/http"
	"sync"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/habeanf/nap/alg/search"
	dep "github.com/habeanf/nap/nlp/parser/dependency/transition"
	nlp "github.com/habeanf/nap/nlp/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type parseRequest struct {
	Tokens []string `json:"tokens,omitempty"`
	Text   string   `json:"text,omitempty"`
}

type parseResponse struct {
	Tokens  []string `json:"tokens"`
	Arcs    [][2]int `json:"arcs"`
	Actions []string `json:"actions"`
}

// ParseServer serves a single parser over HTTP. The embedder and combiner
// carry per-sentence state, so requests are serialized by a mutex.
type ParseServer struct {
	mu     sync.Mutex
	parser *search.Deterministic

	registry    *prometheus.Registry
	parsed      prometheus.Counter
	failed      prometheus.Counter
	transitions prometheus.Counter
	durations   prometheus.Histogram
}

func NewParseServer(parser *search.Deterministic) *ParseServer {
	s := &ParseServer{
		parser:   parser,
		registry: prometheus.NewRegistry(),
		parsed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nap_sentences_parsed_total",
			Help: "Sentences parsed successfully.",
		}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nap_parse_failures_total",
			Help: "Requests that failed during parsing.",
		}),
		transitions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nap_transitions_total",
			Help: "Transitions applied across all parsed sentences.",
		}),
		durations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "nap_parse_duration_seconds",
			Help:    "Wall time per parsed sentence.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	s.registry.MustRegister(s.parsed, s.failed, s.transitions, s.durations)
	return s
}

func (s *ParseServer) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/v1/parse", s.HandleParse).Methods("POST")
	r.HandleFunc("/v1/health", s.HandleHealth).Methods("GET")
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

func (s *ParseServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *ParseServer) HandleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	tokens := req.Tokens
	if len(tokens) == 0 && req.Text != "" {
		tokens = nlp.FromString(req.Text).Tokens()
	}
	if len(tokens) == 0 {
		http.Error(w, "empty sentence", http.StatusBadRequest)
		return
	}

	start := time.Now()
	s.mu.Lock()
	conf, result, err := s.parser.Parse(nlp.NewBasicSentence(tokens))
	s.mu.Unlock()
	s.durations.Observe(time.Since(start).Seconds())
	if err != nil {
		s.failed.Inc()
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.parsed.Inc()
	s.transitions.Add(float64(len(result.Actions)))

	final := conf.(*dep.VectorConfiguration)
	resp := parseResponse{
		Tokens:  tokens,
		Arcs:    make([][2]int, 0, final.Arcs().Size()),
		Actions: make([]string, 0, len(result.Actions)),
	}
	for i := 0; i < final.Arcs().Size(); i++ {
		arc := final.Arcs().Index(i)
		resp.Arcs = append(resp.Arcs, [2]int{arc.GetHead(), arc.GetModifier()})
	}
	for _, action := range result.Actions {
		resp.Actions = append(resp.Actions, action.String())
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func RunServe(cmd *commander.Command, args []string) error {
	VerifyFlags(cmd, []string{"m"})
	modelConf, err := LoadModelConfig(modelFile)
	if err != nil {
		return err
	}
	parser, err := modelConf.NewParser()
	if err != nil {
		return err
	}
	server := NewParseServer(parser)
	Log.Log("msg", "listening", "addr", addr)
	return http.ListenAndServe(addr, server.Router())
}

func ServeCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       RunServe,
		UsageLine: "serve <file options> [arguments]",
		Short:     "serves the parser over HTTP",
		Long: `
serves the parser over HTTP

	$ ./nap serve -m <model> [-addr <host:port>]

POST /v1/parse {"text": "..."} or {"tokens": [...]}; GET /v1/health;
prometheus metrics on /metrics.
`,
		Flag: *flag.NewFlagSet("serve", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&modelFile, "m", "", "Model configuration file")
	cmd.Flag.StringVar(&addr, "addr", ":8000", "Listen address")
	return cmd
}
