package spreadsheet_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/datanova-api/internal/infrastructure/spreadsheet"
)

func TestReadCSV_Coma(t *testing.T) {
	rows, err := spreadsheet.ReadCSV(strings.NewReader("nom,pu,reference\nWidget,10,W-1\n,,\nGadget,4.5,\n"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Widget", rows[0].Get("nom"))
	assert.Equal(t, "4.5", rows[1].Get("PU"))
	assert.Equal(t, "", rows[1].Get("reference"))
	assert.Equal(t, 1, rows[0].Number)
	assert.Equal(t, 3, rows[1].Number)
}

func TestReadCSV_LineasEnBlancoNoCorrenLaNumeracion(t *testing.T) {
	rows, err := spreadsheet.ReadCSV(strings.NewReader("nom;pu\nWidget;10\n;\n\nGadget;abc\n"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Number)
	assert.Equal(t, "Gadget", rows[1].Get("nom"))
	assert.Equal(t, 4, rows[1].Number)
}

func TestReadCSV_PuntoYComaConBOM(t *testing.T) {
	rows, err := spreadsheet.ReadCSV(strings.NewReader("\xef\xbb\xbfMatricule;Nom;Poste\nM1;Ana;Caja\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "M1", rows[0].Get("matricule"))
	assert.Equal(t, "Caja", rows[0].Get("poste"))
}

// "Café" en Windows-1252: é = 0xE9.
func TestReadCSV_Windows1252(t *testing.T) {
	rows, err := spreadsheet.ReadCSV(bytes.NewReader([]byte("nom;pu\nCaf\xe9;3\n")))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Café", rows[0].Get("nom"))
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"produitId", "qte"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"p-1", 3}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"p-2", 2}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	rows, err := spreadsheet.ReadXLSX(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "p-1", rows[0].Get("produitId"))
	assert.Equal(t, "2", rows[1].Get("qte"))
	assert.Equal(t, 2, rows[1].Number)
}

func TestReadXLSX_FilaVaciaIntermedia(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"matricule", "nom"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"M1", "Ana"}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]any{"M3", "Luis"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	rows, err := spreadsheet.ReadXLSX(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Luis", rows[1].Get("nom"))
	assert.Equal(t, 3, rows[1].Number)
}

func TestRead_FormatoNoSoportado(t *testing.T) {
	_, err := spreadsheet.Read("datos.ods", strings.NewReader(""))
	assert.ErrorIs(t, err, spreadsheet.ErrUnsupportedFormat)
}
