package controllers

import (
	"errors"
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"lakd/internal/models"
	"lakd/internal/providers"
	"lakd/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger    providers.Logger
	store     services.StoreServiceInterface
	builder   services.DayBuilderServiceInterface
	templates services.TemplateServiceInterface
	reports   services.ReportServiceInterface
	cache     providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, store services.StoreServiceInterface, builder services.DayBuilderServiceInterface, templates services.TemplateServiceInterface, reports services.ReportServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:    logger,
		store:     store,
		builder:   builder,
		templates: templates,
		reports:   reports,
		cache:     cache,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

// parseYearMonth reads the ?year= and ?month= report coordinates.
func parseYearMonth(r *http.Request) (int, int, error) {
	year := cast.ToInt(r.URL.Query().Get("year"))
	month := cast.ToInt(r.URL.Query().Get("month"))
	if year < 1 || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid report period %d-%d", year, month)
	}
	return year, month, nil
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) GetDay(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if _, err := models.ParseDate(date); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	rec, ok := ac.store.GetRecord(date)
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (ac *ApiController) SaveDay(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var in services.BuildInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	rec, err := ac.builder.Build(in)
	if err != nil {
		if errors.Is(err, services.ErrSundayNoActivity) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ac.store.PutRecord(rec.Tanggal, rec)
	ac.cache.Clear()
	writeJSON(w, http.StatusCreated, rec)
}

func (ac *ApiController) DeleteDay(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if !ac.store.DeleteRecord(date) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	ac.cache.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.serveFromCacheOrCompute(w, "month:"+models.MonthPrefix(year, month), func() (any, error) {
		return ac.store.MonthRecords(year, month), nil
	})
}

type reportResponse struct {
	Year          int               `json:"year"`
	Month         int               `json:"month"`
	MonthName     string            `json:"monthName"`
	Stats         models.MonthStats `json:"stats"`
	SickLeaveDays int               `json:"sickLeaveDays"`
	HolidayDays   int               `json:"holidayDays"`
	Attendance    float64           `json:"attendancePercentage"`
	Dates         []string          `json:"dates"`
}

func (ac *ApiController) GetReport(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.serveFromCacheOrCompute(w, "report:"+models.MonthPrefix(year, month), func() (any, error) {
		summary := ac.reports.MonthSummary(year, month)
		leave := summary.SickLeaveDays + summary.HolidayDays
		return reportResponse{
			Year:          year,
			Month:         month,
			MonthName:     models.MonthName(month),
			Stats:         summary.Stats,
			SickLeaveDays: summary.SickLeaveDays,
			HolidayDays:   summary.HolidayDays,
			Attendance:    ac.reports.AttendancePercentage(summary.Stats.TotalDays, leave),
			Dates:         summary.Dates,
		}, nil
	})
}

func (ac *ApiController) GetTemplates(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "templates", func() (any, error) {
		return ac.templates.List(), nil
	})
}

func (ac *ApiController) AddTemplate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var t models.Template
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	created, err := ac.templates.Add(t)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ac.cache.Clear()
	writeJSON(w, http.StatusCreated, created)
}

func (ac *ApiController) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	id := r.URL.Query().Get("id")
	var upd models.TemplateUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	merged, err := ac.templates.Update(id, upd)
	if err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ac.cache.Clear()
	writeJSON(w, http.StatusOK, merged)
}

func (ac *ApiController) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if err := ac.templates.Delete(id); err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	ac.cache.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) GetProfile(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "profile", func() (any, error) {
		return ac.store.GetProfile(), nil
	})
}

func (ac *ApiController) SaveProfile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var p models.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.store.PutProfile(p)
	ac.cache.Clear()
	writeJSON(w, http.StatusOK, p)
}
