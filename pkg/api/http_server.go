package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"algoviz/pkg/bench"
	"algoviz/pkg/common"
	"algoviz/pkg/config"
	"algoviz/pkg/dataset"
	"algoviz/pkg/engine"
	"algoviz/pkg/export"
	"algoviz/pkg/store"
)

type Server struct {
	eng     *engine.Engine
	archive *store.Archive
	cfg     *config.Config
}

func NewServer(eng *engine.Engine, archive *store.Archive, cfg *config.Config) *Server {
	return &Server{eng: eng, archive: archive, cfg: cfg}
}

func (s *Server) Start(addr string) {
	http.HandleFunc("/api/datasets", s.handleDatasets)
	http.HandleFunc("/api/datasets/", s.handleDatasetByID)
	http.HandleFunc("/api/generate", s.handleGenerate)
	http.HandleFunc("/api/search", s.handleSearch)
	http.HandleFunc("/api/sort", s.handleSort)
	http.HandleFunc("/api/visualize", s.handleVisualize)
	http.HandleFunc("/api/benchmark", s.handleBenchmark)
	http.HandleFunc("/api/results", s.handleResults)
	http.HandleFunc("/api/export", s.handleExport)
	http.HandleFunc("/api/stats", s.handleStats)
	http.HandleFunc("/api/reset", s.handleReset)

	fs := http.FileServer(http.Dir("./static"))
	http.Handle("/", fs)

	log.Printf("[API] Server listening on %s (Web Dashboard available)...", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}

// POST creates a dataset from explicit values, GET lists all datasets.
func (s *Server) handleDatasets(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, s.eng.Datasets().List())

	case http.MethodPost:
		var req struct {
			Name    string   `json:"name"`
			Variant string   `json:"variant"`
			Ints    []int32  `json:"ints"`
			Strings []string `json:"strings"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid body", http.StatusBadRequest)
			return
		}

		var ds *dataset.Dataset
		switch common.Variant(req.Variant) {
		case common.VariantInt:
			ds = dataset.NewIntDataset(req.Name, req.Ints)
		case common.VariantString:
			ds = dataset.NewStringDataset(req.Name, req.Strings)
		default:
			http.Error(w, "Invalid variant (want int or string)", http.StatusBadRequest)
			return
		}
		if ds.Size() > s.cfg.Limits.MaxDatasetSize {
			http.Error(w, "Dataset too large", http.StatusBadRequest)
			return
		}

		s.eng.Datasets().Put(ds)
		writeJSON(w, ds)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleDatasetByID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	id := strings.TrimPrefix(r.URL.Path, "/api/datasets/")
	if id == "" {
		http.Error(w, "Missing dataset id", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		ds, ok := s.eng.Datasets().Get(id)
		if !ok {
			http.Error(w, "Dataset not found", http.StatusNotFound)
			return
		}
		writeJSON(w, ds)

	case http.MethodDelete:
		if !s.eng.Datasets().Delete(id) {
			http.Error(w, "Dataset not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Name string `json:"name"`
		Kind string `json:"kind"`
		Size int    `json:"size"`
		Seed int64  `json:"seed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if req.Size > s.cfg.Limits.MaxDatasetSize {
		http.Error(w, "Dataset too large", http.StatusBadRequest)
		return
	}

	var ds *dataset.Dataset
	var err error
	if dataset.GenKind(req.Kind) == dataset.GenWords {
		ds, err = dataset.GenerateWords(req.Name, req.Size, req.Seed)
	} else {
		ds, err = dataset.GenerateInts(req.Name, dataset.GenKind(req.Kind), req.Size, req.Seed)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.eng.Datasets().Put(ds)
	writeJSON(w, ds)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req engine.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}

	out, err := s.eng.Search(req)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, out)
}

func (s *Server) handleSort(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req engine.SortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}

	out, err := s.eng.Sort(req)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, out)
}

// handleVisualize is search/sort with step recording forced on.
func (s *Server) handleVisualize(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		DatasetID string `json:"dataset_id"`
		Algorithm string `json:"algorithm"`
		Target    string `json:"target"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}

	op, err := engine.Operation(req.Algorithm)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var out *engine.RunOutput
	if op == "search" {
		out, err = s.eng.Search(engine.SearchRequest{
			DatasetID: req.DatasetID,
			Algorithm: req.Algorithm,
			Target:    req.Target,
			Visualize: true,
		})
	} else {
		out, err = s.eng.Sort(engine.SortRequest{
			DatasetID: req.DatasetID,
			Algorithm: req.Algorithm,
			Visualize: true,
		})
	}
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, out)
}

func (s *Server) handleBenchmark(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	opts := bench.Options{
		Algorithms:  s.cfg.Benchmark.Algorithms,
		Sizes:       s.cfg.Benchmark.Sizes,
		RunsPerSize: s.cfg.Benchmark.RunsPerSize,
		Parallelism: s.cfg.Benchmark.Parallelism,
		Seed:        s.cfg.Benchmark.Seed,
	}
	if r.Body != nil {
		var req bench.Options
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			if len(req.Algorithms) > 0 {
				opts.Algorithms = req.Algorithms
			}
			if len(req.Sizes) > 0 {
				opts.Sizes = req.Sizes
			}
			if req.RunsPerSize > 0 {
				opts.RunsPerSize = req.RunsPerSize
			}
			if req.Parallelism > 0 {
				opts.Parallelism = req.Parallelism
			}
			if req.Seed != 0 {
				opts.Seed = req.Seed
			}
		}
	}

	report, err := bench.Run(s.eng, opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, report)
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	if algo := r.URL.Query().Get("algorithm"); algo != "" {
		results, err := s.archive.ByAlgorithm(algo)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, results)
		return
	}

	limit := 0
	if ls := r.URL.Query().Get("limit"); ls != "" {
		n, err := strconv.Atoi(ls)
		if err != nil {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	results, err := s.archive.List(limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, results)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	results, err := s.archive.List(0)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment;filename=algoviz_results.csv")
	if err := export.WriteResultsCSV(w, results); err != nil {
		log.Printf("[API] CSV export aborted: %v", err)
	}
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	snapshot := s.eng.Stats().Snapshot()
	snapshot["datasets"] = s.eng.Datasets().Len()
	if n, err := s.archive.Count(); err == nil {
		snapshot["archived_results"] = n
	}
	writeJSON(w, snapshot)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	s.eng.Datasets().Clear()
	if err := s.archive.Truncate(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Reset Successful"))
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, engine.ErrDatasetNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrUnknownAlgorithm),
		errors.Is(err, engine.ErrUnsupportedVariant),
		errors.Is(err, engine.ErrTooLargeForViz),
		errors.Is(err, engine.ErrBadTarget):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
