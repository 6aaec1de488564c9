package answers

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"sort"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/nikogura/archetype-match/pkg/questions"
	"github.com/nikogura/archetype-match/pkg/scorer"
)

// Load reads and validates a single answer sheet from a JSON file or URL.
func Load(source string) (sheet Sheet, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	sheet, err = LoadWithContext(ctx, source)
	return sheet, err
}

// LoadWithContext is Load with a caller-supplied context.
func LoadWithContext(ctx context.Context, source string) (sheet Sheet, err error) {
	var data []byte
	data, err = Fetch(ctx, source)
	if err != nil {
		return sheet, err
	}

	err = json.Unmarshal(data, &sheet)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse answer sheet JSON: %s", source)
		return sheet, err
	}

	err = sheet.Validate()
	if err != nil {
		err = errors.Wrapf(err, "answer sheet validation failed: %s", source)
		return sheet, err
	}

	return sheet, err
}

// LoadMany reads sheets from a file or URL holding either a JSON array or one JSON object per line.
func LoadMany(source string) (sheets []Sheet, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	sheets, err = LoadManyWithContext(ctx, source)
	return sheets, err
}

// LoadManyWithContext is LoadMany with a caller-supplied context.
func LoadManyWithContext(ctx context.Context, source string) (sheets []Sheet, err error) {
	var data []byte
	data, err = Fetch(ctx, source)
	if err != nil {
		return sheets, err
	}

	sheets, err = Decode(bytes.NewReader(data))
	if err != nil {
		err = errors.Wrapf(err, "failed to load answer sheets: %s", source)
		return sheets, err
	}

	return sheets, err
}

// Decode reads sheets from r as a JSON array or JSON lines and validates each one.
func Decode(r io.Reader) (sheets []Sheet, err error) {
	var data []byte
	data, err = io.ReadAll(r)
	if err != nil {
		err = errors.Wrap(err, "failed to read answer sheets")
		return sheets, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		err = errors.New("no answer sheets found")
		return sheets, err
	}

	if trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &sheets)
		if err != nil {
			err = errors.Wrap(err, "failed to parse answer sheet array")
			return sheets, err
		}
	} else {
		sheets, err = decodeLines(trimmed)
		if err != nil {
			return sheets, err
		}
	}

	for i := range sheets {
		err = sheets[i].Validate()
		if err != nil {
			err = errors.Wrapf(err, "answer sheet %d (user %q)", i, sheets[i].UserID)
			return sheets, err
		}
	}

	return sheets, err
}

func decodeLines(data []byte) (sheets []Sheet, err error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}

		var sheet Sheet
		err = json.Unmarshal(text, &sheet)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse answer sheet on line %d", line)
			return sheets, err
		}
		sheets = append(sheets, sheet)
	}

	err = scanner.Err()
	if err != nil {
		err = errors.Wrap(err, "failed to scan answer sheets")
		return sheets, err
	}

	return sheets, err
}

// Coverage compares the sheet with the bank. Findings are sorted for stable output.
func (s *Sheet) Coverage(bank *questions.Bank) (coverage Coverage) {
	answered := make(map[string]bool, len(s.Answers))

	for id, answer := range s.Answers {
		q, found := bank.Question(id)
		if !found {
			coverage.UnknownQuestions = append(coverage.UnknownQuestions, id)
			continue
		}
		answered[q.ID] = true

		if answer.Kind != q.Kind {
			coverage.WrongKind = append(coverage.WrongKind, id)
		}

		for _, option := range picks(answer) {
			if option != "" && !bank.HasOption(id, option) {
				coverage.UnknownOptions = append(coverage.UnknownOptions, id+":"+option)
			}
		}
	}

	for _, q := range bank.Questions() {
		if !answered[q.ID] {
			coverage.Unanswered = append(coverage.Unanswered, q.ID)
		}
	}

	sort.Strings(coverage.UnknownQuestions)
	sort.Strings(coverage.UnknownOptions)
	sort.Strings(coverage.WrongKind)
	return coverage
}

func picks(answer scorer.Answer) (options []string) {
	if answer.Kind == questions.KindDual {
		options = []string{answer.MostLikeOption, answer.SecondLikeOption}
		return options
	}
	options = []string{answer.SelectedOption}
	return options
}
