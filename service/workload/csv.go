package workload

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/viant/schedsim/model/process"
	"github.com/viant/schedsim/model/types"
)

const (
	pidColumn = iota
	arrivalColumn
	burstColumn
)

// columnAliases maps normalized header names to columns.
var columnAliases = map[string]int{
	"pid":         pidColumn,
	"process":     pidColumn,
	"processid":   pidColumn,
	"id":          pidColumn,
	"arrival":     arrivalColumn,
	"arrivaltime": arrivalColumn,
	"burst":       burstColumn,
	"bursttime":   burstColumn,
	"duration":    burstColumn,
}

func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimPrefix(name, "\ufeff")
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(name)
}

func decodeCSV(data []byte) ([]*process.Process, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	columns := [3]int{pidColumn, arrivalColumn, burstColumn}
	var ret []*process.Process
	headerChecked := false
	for record := 1; ; record++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, types.NewConfigurationError("%v", err)
		}
		if isBlank(row) {
			continue
		}
		if !headerChecked {
			headerChecked = true
			if isHeader(row) {
				if columns, err = headerColumns(row); err != nil {
					return nil, err
				}
				continue
			}
		}
		p, err := decodeRow(row, columns, record)
		if err != nil {
			return nil, err
		}
		ret = append(ret, p)
	}
	if len(ret) == 0 {
		return nil, types.NewConfigurationError("workload has no processes")
	}
	return ret, nil
}

// isHeader returns true when the arrival column is not a number.
func isHeader(row []string) bool {
	if len(row) < 2 {
		return true
	}
	_, err := strconv.Atoi(strings.TrimSpace(row[1]))
	return err != nil
}

func headerColumns(row []string) ([3]int, error) {
	ret := [3]int{-1, -1, -1}
	for i, name := range row {
		column, ok := columnAliases[normalizeHeader(name)]
		if !ok || ret[column] != -1 {
			continue
		}
		ret[column] = i
	}
	for column, index := range ret {
		if index == -1 {
			return ret, types.NewConfigurationError("missing %v column in header %v", columnName(column), row)
		}
	}
	return ret, nil
}

func columnName(column int) string {
	switch column {
	case pidColumn:
		return "pid"
	case arrivalColumn:
		return "arrival_time"
	}
	return "burst_time"
}

func decodeRow(row []string, columns [3]int, record int) (*process.Process, error) {
	var values [3]string
	for column, index := range columns {
		if index >= len(row) {
			return nil, types.NewConfigurationError("record %d: missing %v", record, columnName(column))
		}
		values[column] = strings.TrimSpace(row[index])
	}
	arrival, err := strconv.Atoi(values[arrivalColumn])
	if err != nil {
		return nil, types.NewConfigurationError("record %d: invalid arrival time %q", record, values[arrivalColumn])
	}
	burst, err := strconv.Atoi(values[burstColumn])
	if err != nil {
		return nil, types.NewConfigurationError("record %d: invalid burst time %q", record, values[burstColumn])
	}
	return process.New(values[pidColumn], arrival, burst), nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func encodeCSV(processes []*process.Process) ([]byte, error) {
	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)
	if err := writer.Write([]string{"pid", "arrival_time", "burst_time"}); err != nil {
		return nil, err
	}
	for _, p := range processes {
		if err := writer.Write([]string{p.PID, strconv.Itoa(p.ArrivalTime), strconv.Itoa(p.BurstTime)}); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	return buffer.Bytes(), writer.Error()
}
