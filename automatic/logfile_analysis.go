package automatic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadResults parses a results file written by Run.
func ReadResults(r io.Reader) ([]*GameResult, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	numPlayers := 0
	var results []*GameResult
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		if record[0] == "gameID" {
			// Header: 5 fixed columns, one per player, then winners.
			numPlayers = len(record) - 6
			continue
		}
		if numPlayers < 2 || len(record) != numPlayers+6 {
			return nil, 0, fmt.Errorf("bad record %v", record)
		}
		res, err := parseResult(record, numPlayers)
		if err != nil {
			return nil, 0, err
		}
		results = append(results, res)
	}
	return results, numPlayers, nil
}

func parseResult(record []string, numPlayers int) (*GameResult, error) {
	res := &GameResult{GameID: record[0]}
	var err error
	ints := []*int{&res.Rounds, &res.Turns}
	for i, p := range ints {
		if *p, err = strconv.Atoi(record[i+1]); err != nil {
			return nil, err
		}
	}
	if res.Finished, err = strconv.ParseBool(record[3]); err != nil {
		return nil, err
	}
	if res.FirstPlayer, err = strconv.Atoi(record[4]); err != nil {
		return nil, err
	}
	res.Scores = make([]int, numPlayers)
	for i := range numPlayers {
		if res.Scores[i], err = strconv.Atoi(record[5+i]); err != nil {
			return nil, err
		}
	}
	for _, w := range strings.Fields(record[5+numPlayers]) {
		idx, err := strconv.Atoi(w)
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= numPlayers {
			return nil, fmt.Errorf("bad winner %d in game %v", idx, res.GameID)
		}
		res.Winners = append(res.Winners, idx)
	}
	return res, nil
}

// AnalyzeLogFile reads the given results file and summarizes it.
func AnalyzeLogFile(filepath string) (*Summary, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	results, numPlayers, err := ReadResults(file)
	if err != nil {
		return nil, err
	}
	summary := NewSummary(numPlayers)
	for _, res := range results {
		summary.Add(res)
	}
	return summary, nil
}
