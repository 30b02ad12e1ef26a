package exports

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/JaimeStill/assessor/pkg/handlers"
	"github.com/JaimeStill/assessor/pkg/routes"
	"github.com/JaimeStill/assessor/pkg/storage"
)

// Handler provides HTTP handlers for CSV exports and their archives.
type Handler struct {
	sys         System
	logger      *slog.Logger
	maxListSize int32
}

func NewHandler(sys System, logger *slog.Logger, maxListSize int32) *Handler {
	return &Handler{
		sys:         sys,
		logger:      logger.With("handler", "exports"),
		maxListSize: maxListSize,
	}
}

// Routes returns the route group definition for exports.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/exports",
		Tags:   []string{"Exports"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Datasets, OpenAPI: spec.Datasets},
			{Method: "GET", Pattern: "/archive", Handler: h.ListArchives, OpenAPI: spec.ListArchives},
			{Method: "GET", Pattern: "/archive/{key...}", Handler: h.DownloadArchive, OpenAPI: spec.DownloadArchive},
			{Method: "DELETE", Pattern: "/archive/{key...}", Handler: h.DeleteArchive, OpenAPI: spec.DeleteArchive},
			{Method: "GET", Pattern: "/{dataset}", Handler: h.Download, OpenAPI: spec.Download},
			{Method: "POST", Pattern: "/{dataset}", Handler: h.Archive, OpenAPI: spec.Archive},
		},
		Schemas: spec.Schemas,
	}
}

func (h *Handler) Datasets(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Datasets())
}

// Download streams a dataset as a CSV attachment.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	dataset := r.PathValue("dataset")
	if _, err := Lookup(dataset); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	filename := fmt.Sprintf("%s-%s.csv", dataset, time.Now().UTC().Format("2006-01-02"))
	cw := &attachment{ResponseWriter: w, filename: filename}

	n, err := h.sys.Write(r.Context(), dataset, cw)
	if err != nil {
		if !cw.started {
			handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
			return
		}
		h.logger.Error("export interrupted", "dataset", dataset, "rows", n, "error", err)
		return
	}

	h.logger.Info("export downloaded", "dataset", dataset, "rows", n)
}

func (h *Handler) Archive(w http.ResponseWriter, r *http.Request) {
	archive, err := h.sys.Archive(r.Context(), r.PathValue("dataset"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, archive)
}

func (h *Handler) ListArchives(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	maxResults, err := storage.ParseMaxResults(q.Get("max_results"), h.maxListSize)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.ListArchives(r.Context(), q.Get("dataset"), q.Get("marker"), maxResults)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) DownloadArchive(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	result, err := h.sys.OpenArchive(r.Context(), key)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	defer result.Body.Close()

	w.Header().Set("Content-Type", result.ContentType)
	if result.ContentLength > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(result.ContentLength, 10))
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", path.Base(key)))
	w.WriteHeader(http.StatusOK)
	io.Copy(w, result.Body)
}

func (h *Handler) DeleteArchive(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.DeleteArchive(r.Context(), r.PathValue("key")); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// attachment sets the CSV download headers on the first write so a query
// failure can still be reported as a JSON error.
type attachment struct {
	http.ResponseWriter
	filename string
	started  bool
}

func (a *attachment) Write(p []byte) (int, error) {
	if !a.started {
		a.started = true
		a.Header().Set("Content-Type", contentType)
		a.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.filename))
		a.WriteHeader(http.StatusOK)
	}
	return a.ResponseWriter.Write(p)
}
