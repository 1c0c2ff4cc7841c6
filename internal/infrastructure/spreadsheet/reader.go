// Package spreadsheet lee archivos de importación (.xlsx y .csv) y los
// devuelve como filas indexadas por encabezado.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ErrUnsupportedFormat extensión distinta de .xlsx o .csv.
var ErrUnsupportedFormat = errors.New("formato de archivo no soportado (use .xlsx o .csv)")

// Row una fila de datos. Number es su posición en el archivo contada desde
// el encabezado (1 = primera fila bajo los encabezados); las filas vacías
// se descartan pero no corren la numeración.
type Row struct {
	Number int
	Cells  map[string]string
}

// Get devuelve la celda de la columna name (sin distinguir mayúsculas).
func (r Row) Get(name string) string {
	return r.Cells[Key(name)]
}

// record fila cruda con su posición (línea del CSV o fila de la hoja).
type record struct {
	pos    int
	fields []string
}

// Key normaliza un encabezado: sin espacios alrededor y en minúsculas.
func Key(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

// Read elige el lector según la extensión de filename.
func Read(filename string, r io.Reader) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return ReadXLSX(r)
	case ".csv":
		return ReadCSV(r)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// ReadXLSX lee la primera hoja del libro; la primera fila son los encabezados.
func ReadXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %s: %w", sheets[0], err)
	}
	// GetRows conserva las filas vacías intermedias: el índice es la fila de la hoja.
	records := make([]record, len(raw))
	for i, fields := range raw {
		records[i] = record{pos: i + 1, fields: fields}
	}
	return toRows(records), nil
}

// ReadCSV lee un CSV separado por coma o punto y coma. Si el contenido no es
// UTF-8 válido se decodifica como Windows-1252 (exportaciones de Excel).
func ReadCSV(r io.Reader) ([]Row, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer csv: %w", err)
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))

	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.Windows1252.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.Comma = delimiter(raw)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	var records []record
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsear csv: %w", err)
		}
		// encoding/csv salta las líneas en blanco; FieldPos da la línea real.
		line, _ := cr.FieldPos(0)
		records = append(records, record{pos: line, fields: fields})
	}
	return toRows(records), nil
}

// delimiter mira solo la línea de encabezados.
func delimiter(raw []byte) rune {
	header := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		header = raw[:i]
	}
	if bytes.Count(header, []byte(";")) > bytes.Count(header, []byte(",")) {
		return ';'
	}
	return ','
}

// toRows usa el primer registro no vacío como encabezados y descarta filas vacías.
func toRows(records []record) []Row {
	for len(records) > 0 && blank(records[0].fields) {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil
	}
	header := records[0]
	headers := make([]string, len(header.fields))
	for i, h := range header.fields {
		headers[i] = Key(h)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		if blank(rec.fields) {
			continue
		}
		cells := make(map[string]string, len(headers))
		for i, h := range headers {
			if h == "" || i >= len(rec.fields) {
				continue
			}
			cells[h] = strings.TrimSpace(rec.fields[i])
		}
		rows = append(rows, Row{Number: rec.pos - header.pos, Cells: cells})
	}
	return rows
}

func blank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
