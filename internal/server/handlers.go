package server

import (
	"encoding/json"
	"net/http"

	"github.com/structuraltools/goiscc/internal/compliance"
	"github.com/structuraltools/goiscc/internal/design"
	"github.com/structuraltools/goiscc/internal/loads"
	"github.com/structuraltools/goiscc/internal/report"
)

// Check runs a full compliance check for the posted design record.
// Checker faults come back as 200 responses carrying an error-only
// result, the same shape the in-process API returns.
func Check(w http.ResponseWriter, r *http.Request) {
	var input design.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	result := compliance.Check(&input)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Loads runs only the automatic load derivation and returns the
// design record with its resolved loads and audit blocks.
func Loads(w http.ResponseWriter, r *http.Request) {
	var input design.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	member, err := design.ParseMemberType(input.MemberType)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := loads.Calculate(member, &input); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(&input)
}

// ReportRequest wraps a design record with the report header fields.
type ReportRequest struct {
	Project string       `json:"project"`
	Author  string       `json:"author"`
	Title   string       `json:"title"`
	Design  design.Input `json:"design"`
}

// ReportPDF checks the posted design and streams the PDF report.
func ReportPDF(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	result := compliance.Check(&req.Design)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"compliance-report.pdf\"")
	opts := report.Options{Project: req.Project, Author: req.Author, Title: req.Title}
	if err := report.WritePDF(w, result, opts); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

// ReportXLSX checks the posted design and streams the check schedule
// as a spreadsheet.
func ReportXLSX(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	result := compliance.Check(&req.Design)

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"compliance-checks.xlsx\"")
	if err := report.WriteXLSX(w, result); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
