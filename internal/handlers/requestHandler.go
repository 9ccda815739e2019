package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"fdalabel-api/internal/adapter"
	"fdalabel-api/internal/api"
	"fdalabel-api/internal/config"
	"fdalabel-api/internal/openfda"
	"fdalabel-api/internal/pipeline"
	"fdalabel-api/pkg/logger_i"
)

var (
	handlerInstance *labelHandler //private singleton
	once            sync.Once
	logRH           *logger_i.Logger
)

type labelHandler struct {
	fetcher  openfda.Fetcher
	pipeline pipeline.Service
}

func InitHandlers(fetcher openfda.Fetcher, pipelineService pipeline.Service) {
	once.Do(func() {
		handlerInstance = &labelHandler{fetcher: fetcher, pipeline: pipelineService}

		logRH = logger_i.NewLogger("RequestHandler")
		logRH.Info("Starting label handlers")
	})
}

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// SearchLabelsHandler godoc
// @Summary      Search FDA drug labels
// @Description  Searches the openFDA drug-label endpoint and returns compact label records.
// @Tags         Labels
// @Produce      json
// @Param        q      query  string  false  "Free-text query"
// @Param        drug   query  string  false  "Drug name (brand, generic or substance)"
// @Param        limit  query  int     false  "Maximum labels to return (1-100)"
// @Success      200  {object}  api.SearchLabelsResponse
// @Failure      400  {object}  api.ErrorResponse  "Neither q nor drug supplied"
// @Failure      502  {object}  api.ErrorResponse  "openFDA unavailable"
// @Router       /labels/search [get]
func SearchLabelsHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", "remote", r.RemoteAddr)
		return
	}
	traceID := traceFromContext(r.Context())

	query := r.URL.Query().Get("q")
	drug := r.URL.Query().Get("drug")
	searchExpr := pipeline.BuildSearchExpression(query, drug, "")
	if searchExpr == "" {
		WriteErrorResponse(w, http.StatusBadRequest, traceID, "Provide q or drug")
		return
	}

	result, err := handlerInstance.fetcher.Fetch(r.Context(), searchExpr, 0, parseLimit(r))
	if err != nil {
		logRH.Error("Label search failed", "error", err)
		WriteErrorResponse(w, http.StatusBadGateway, traceID, "Upstream label source unavailable")
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToSearchResponse(result))
}

// GetLabelSectionsHandler godoc
// @Summary      Get named sections of one drug label
// @Description  Fetches the best-matching label for a drug and returns the requested sections verbatim.
// @Tags         Labels
// @Produce      json
// @Param        drug      query  string  true   "Drug name (brand, generic or substance)"
// @Param        sections  query  string  false  "Comma-separated section names; all populated sections when omitted"
// @Success      200  {object}  api.LabelSectionsResponse
// @Failure      400  {object}  api.ErrorResponse  "Missing drug"
// @Failure      404  {object}  api.ErrorResponse  "No label found"
// @Failure      502  {object}  api.ErrorResponse  "openFDA unavailable"
// @Router       /labels/sections [get]
func GetLabelSectionsHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", "remote", r.RemoteAddr)
		return
	}
	traceID := traceFromContext(r.Context())

	drug := r.URL.Query().Get("drug")
	if strings.TrimSpace(drug) == "" {
		WriteErrorResponse(w, http.StatusBadRequest, traceID, "drug is required")
		return
	}

	searchExpr := pipeline.BuildSearchExpression("", drug, "")
	result, err := handlerInstance.fetcher.Fetch(r.Context(), searchExpr, 0, 1)
	if err != nil {
		logRH.Error("Label fetch failed", "error", err)
		WriteErrorResponse(w, http.StatusBadGateway, traceID, "Upstream label source unavailable")
		return
	}
	if len(result.Labels) == 0 {
		WriteErrorResponse(w, http.StatusNotFound, traceID, "No label found for "+drug)
		return
	}

	var requested []string
	if raw := r.URL.Query().Get("sections"); raw != "" {
		requested = strings.Split(raw, ",")
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToSectionsResponse(&result.Labels[0], requested))
}

// SummarizeHandler godoc
// @Summary      Summarize drug safety information
// @Description  Runs the retrieval pipeline: fetch matching labels, chunk, rank against the query, summarize and cite.
// @Tags         Summarize
// @Accept       json
// @Produce      json
// @Param        request  body      api.SummarizeRequest  true  "Search criteria; at least one of query/drug/condition"
// @Success      200      {object}  labelModel.ResultBundle
// @Failure      400      {object}  api.ErrorResponse  "Malformed body"
// @Failure      502      {object}  api.ErrorResponse  "Pipeline failure"
// @Router       /summarize [post]
func SummarizeHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", "remote", r.RemoteAddr)
		return
	}
	traceID := traceFromContext(r.Context())

	var requestData api.SummarizeRequest
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			logRH.Error("Couldn't close the summarize reader :", "error", err)
		}
	}(r.Body)
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		logRH.Warn("Bad summarize request", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, traceID, "Bad Request")
		return
	}

	params := pipeline.SummarizeParams{
		Query:     requestData.Query,
		Drug:      requestData.Drug,
		Condition: requestData.Condition,
		TopK:      requestData.TopK,
	}
	if requestData.Filters != nil {
		params.Limit = requestData.Filters.Limit
	}

	bundle, err := handlerInstance.pipeline.Run(r.Context(), params)
	if err != nil {
		logRH.Error("Summarize pipeline failed", "error", err)
		WriteErrorResponse(w, http.StatusBadGateway, traceID, "Summarization failed")
		return
	}
	writeJsonResponse(w, http.StatusOK, bundle)
}

func parseLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return config.DefaultFetchLim
	}
	if limit > config.MaxFetchLim {
		return config.MaxFetchLim
	}
	return limit
}
