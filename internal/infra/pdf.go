package infra

// pdf.go — visit report generation using go-pdf/fpdf.
// Produces an A4 page with the visit window, status and guest table.
// The output file is saved to storagePath/reporte_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Jonathancraxker/api-ecoparking/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateReportePDF renders the visit report for a reporte and its cita.
// storagePath is the directory where the PDF will be written (created if
// needed). Returns the absolute path to the generated file.
func GenerateReportePDF(rep *model.Reporte, cita *model.Cita, invitados []model.Invitado, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("reporte_%d.pdf", rep.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "EcoParking", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Reporte de visita", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Visit info ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Reporte N° %d — Cita N° %d", rep.ID, cita.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Ventana: %s %s  →  %s %s",
		cita.FechaInicio, cita.HoraInicio, cita.FechaFin, cita.HoraFin), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Estado: "+cita.EstadoCita, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Motivo: "+cita.Motivo, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Registrado: "+rep.CreatedAt.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	if rep.Observaciones != nil && *rep.Observaciones != "" {
		pdf.CellFormat(contentW, 5, "Observaciones: "+*rep.Observaciones, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(3)

	// ── Guest table ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Invitados (%d)", cita.NumeroInvitados), "", 1, "L", false, 0, "")

	col1 := contentW * 0.32 // nombre
	col2 := contentW * 0.32 // correo
	col3 := contentW * 0.20 // empresa
	col4 := contentW * 0.16 // tipo

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 6, "Nombre", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Correo", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "Empresa", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 6, "Tipo", "B", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, inv := range invitados {
		pdf.CellFormat(col1, 5, recortar(inv.Nombre, 30), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, recortar(inv.Correo, 32), "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, recortar(inv.Empresa, 18), "", 0, "L", false, 0, "")
		pdf.CellFormat(col4, 5, recortar(inv.TipoVisitante, 14), "", 1, "L", false, 0, "")
	}
	if len(invitados) == 0 {
		pdf.CellFormat(contentW, 5, "Sin invitados registrados", "", 1, "L", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}

func recortar(s string, max int) string {
	if len(s) > max {
		return s[:max-1] + "…"
	}
	return s
}
