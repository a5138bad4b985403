// Package parser reads payment instructions from CSV input and converts them
// into typed values for the engine. Malformed records are dropped without
// aborting the stream; only the inability to read the source at all is fatal.
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/amirasaad/payengine/pkg/domain"
)

// expected wire columns: type, client, tx, amount (amount may be omitted).
const minFields = 3

// wireRecord is one raw CSV row before conversion, shaped for validation.
type wireRecord struct {
	Kind   string `validate:"required,oneof=deposit withdrawal dispute resolve chargeback"`
	Client string `validate:"required,number"`
	Tx     string `validate:"required,number"`
	Amount string `validate:"omitempty"`
}

// Parser converts CSV payment instruction records into domain instructions.
type Parser struct {
	validate *validator.Validate
	logger   *slog.Logger
}

// New returns a Parser that logs dropped records through logger.
func New(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{
		validate: validator.New(),
		logger:   logger,
	}
}

// ParseFile opens path and parses it. Failure to open the file is a boundary
// error and is returned to the caller.
func (p *Parser) ParseFile(path string) ([]domain.Instruction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			p.logger.Debug("closing input", "error", closeErr)
		}
	}()

	return p.Parse(f)
}

// Parse reads instruction records from r in arrival order. Individual rows
// that fail to parse or validate are dropped with a debug log and a summary
// warning; a read failure of the underlying source is returned as an error.
func (p *Parser) Parse(r io.Reader) ([]domain.Instruction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var (
		instructions []domain.Instruction
		dropped      int
		header       = true
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			dropped++
			p.logger.Debug("dropping unreadable record", "error", err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		if header {
			header = false
			continue
		}

		in, err := p.convert(record)
		if err != nil {
			dropped++
			p.logger.Debug("dropping malformed record", "error", err, "record", record)
			continue
		}
		instructions = append(instructions, in)
	}

	if dropped > 0 {
		p.logger.Warn("dropped malformed records", "count", dropped)
	}
	return instructions, nil
}

func (p *Parser) convert(record []string) (domain.Instruction, error) {
	if len(record) < minFields {
		return domain.Instruction{}, fmt.Errorf("expected at least %d fields, got %d", minFields, len(record))
	}

	wire := wireRecord{
		Kind:   strings.ToLower(strings.TrimSpace(record[0])),
		Client: strings.TrimSpace(record[1]),
		Tx:     strings.TrimSpace(record[2]),
	}
	if len(record) > minFields {
		wire.Amount = strings.TrimSpace(record[3])
	}
	if err := p.validate.Struct(wire); err != nil {
		return domain.Instruction{}, fmt.Errorf("validate record: %w", err)
	}

	kind, err := domain.ParseKind(wire.Kind)
	if err != nil {
		return domain.Instruction{}, err
	}
	client, err := strconv.ParseUint(wire.Client, 10, 16)
	if err != nil {
		return domain.Instruction{}, fmt.Errorf("parse client id: %w", err)
	}
	id, err := strconv.ParseUint(wire.Tx, 10, 32)
	if err != nil {
		return domain.Instruction{}, fmt.Errorf("parse instruction id: %w", err)
	}

	// An empty amount field decodes to zero; referencing kinds never carry one.
	amount := decimal.Zero
	if wire.Amount != "" {
		amount, err = decimal.NewFromString(wire.Amount)
		if err != nil {
			return domain.Instruction{}, fmt.Errorf("parse amount: %w", err)
		}
		if amount.IsNegative() {
			return domain.Instruction{}, fmt.Errorf("negative amount %s", wire.Amount)
		}
	}

	return domain.Instruction{
		ID:       domain.InstructionID(id),
		Kind:     kind,
		ClientID: domain.ClientID(client),
		Amount:   amount,
	}, nil
}
