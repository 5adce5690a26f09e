package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"lakd/internal/excel"
	"lakd/internal/models"
	"lakd/internal/providers"
	"lakd/internal/services"
)

// Spreadsheets and backup files are bigger than API payloads.
const maxTransferBodySize = 8 << 20 // 8 MB

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// TransferController owns everything that moves data across the process
// boundary: spreadsheet export and import, backup download and restore,
// and the cloud sync push/pull pair.
type TransferController struct {
	logger   providers.Logger
	store    services.StoreServiceInterface
	reports  services.ReportServiceInterface
	backup   services.BackupServiceInterface
	sync     services.SyncServiceInterface
	exporter *excel.Exporter
	metrics  providers.MetricsProviderInterface
	cache    providers.CacheProviderInterface
}

func NewTransferController(logger providers.Logger, store services.StoreServiceInterface, reports services.ReportServiceInterface, backup services.BackupServiceInterface, sync services.SyncServiceInterface, exporter *excel.Exporter, metrics providers.MetricsProviderInterface, cache providers.CacheProviderInterface) *TransferController {
	return &TransferController{
		logger:   logger,
		store:    store,
		reports:  reports,
		backup:   backup,
		sync:     sync,
		exporter: exporter,
		metrics:  metrics,
		cache:    cache,
	}
}

func (tc *TransferController) ExportMonth(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	summary := tc.reports.MonthSummary(year, month)
	leave := summary.SickLeaveDays + summary.HolidayDays
	attendance := tc.reports.AttendancePercentage(summary.Stats.TotalDays, leave)

	f, err := tc.exporter.Build(tc.store.GetProfile(), tc.store.MonthRecords(year, month), summary, attendance, year, month)
	if err != nil {
		tc.logger.Errorf(providers.TypeApp, "Export failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"LAK-%s-%d.xlsx\"", models.MonthName(month), year))
	if _, err := f.WriteTo(w); err != nil {
		tc.logger.Errorf(providers.TypeApp, "Error writing workbook response: %s", err)
	}
}

type importResponse struct {
	ImportedDays   int  `json:"importedDays"`
	ProfileApplied bool `json:"profileApplied"`
}

func (tc *TransferController) ImportWorkbook(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxTransferBodySize)

	var reader io.Reader = r.Body
	if file, _, err := r.FormFile("file"); err == nil {
		defer file.Close()
		reader = file
	}

	result, err := excel.Parse(reader)
	if err != nil {
		tc.logger.Warnf(providers.TypeApp, "Workbook import rejected: %s", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	for date, rec := range result.Records {
		tc.store.PutRecord(date, rec)
	}
	profileApplied := false
	if !result.Profile.Empty() {
		tc.store.PutProfile(result.Profile)
		profileApplied = true
	}

	tc.metrics.IncImportedDays(len(result.Records))
	tc.cache.Clear()
	tc.logger.Infof(providers.TypeApp, "Imported %d day records from workbook", len(result.Records))
	writeJSON(w, http.StatusOK, importResponse{
		ImportedDays:   len(result.Records),
		ProfileApplied: profileApplied,
	})
}

func (tc *TransferController) DownloadBackup(w http.ResponseWriter, r *http.Request) {
	payload := tc.backup.Export()
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=\"lak-backup.json\"")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

type restoreResponse struct {
	AppliedKeys int `json:"appliedKeys"`
}

func (tc *TransferController) RestoreBackup(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxTransferBodySize)
	var payload models.BackupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	applied := tc.backup.Import(&payload)
	tc.cache.Clear()
	tc.logger.Infof(providers.TypeApp, "Backup restored, %d sections applied", applied)
	writeJSON(w, http.StatusOK, restoreResponse{AppliedKeys: applied})
}

func (tc *TransferController) SyncPush(w http.ResponseWriter, r *http.Request) {
	err := tc.sync.Push(r.Context())
	tc.metrics.IncSyncOps("push", err == nil)
	if err != nil {
		tc.logger.Warnf(providers.TypeApp, "Sync push failed: %s", err)
		http.Error(w, err.Error(), syncStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (tc *TransferController) SyncPull(w http.ResponseWriter, r *http.Request) {
	lastSync, err := tc.sync.Pull(r.Context())
	tc.metrics.IncSyncOps("pull", err == nil)
	if err != nil {
		tc.logger.Warnf(providers.TypeApp, "Sync pull failed: %s", err)
		http.Error(w, err.Error(), syncStatus(err))
		return
	}
	tc.cache.Clear()
	resp := map[string]string{"status": "ok"}
	if !lastSync.IsZero() {
		resp["lastSync"] = lastSync.Format(time.RFC3339)
	}
	writeJSON(w, http.StatusOK, resp)
}

func syncStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrSyncNotConfigured):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrSyncInFlight):
		return http.StatusConflict
	case errors.Is(err, services.ErrNoRemoteData):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
