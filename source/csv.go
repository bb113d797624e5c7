package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/finvolt/txreplay/types"
)

// transactionHeader is the first line of a transaction CSV file.
const transactionHeader = "type, client, tx, amount"

// outputHeader is the first line of a balance summary CSV file.
const outputHeader = "client,available,held,total,locked"

// CSV implements a streaming transaction source over the transaction wire
// format.
//
// The format is comma-separated with columns `type, client, tx, amount`.
// The first line is a header and is skipped without inspection. Arbitrary
// whitespace around fields is ignored, and the amount column is absent or
// empty for dispute, resolve and chargeback records. The format is not
// RFC 4180 (no quoting), which is why the decoder tokenizes lines itself
// instead of using a generic CSV reader.
//
// Decoding errors identify the offending field and line and are fatal to the
// run; the engine never retries parses.
type CSV struct {
	scanner *bufio.Scanner
	line    int
}

var _ types.TransactionSource = (*CSV)(nil)

// NewCSV creates a transaction source decoding the transaction CSV format.
//
// Parameters:
//   - r: Reader positioned at the header line
//
// Returns:
//   - *CSV: Initialized streaming decoder
//
// Example:
//
//	f, _ := os.Open("transactions.csv")
//	defer f.Close()
//	outputs, err := eng.Run(ctx, source.NewCSV(f))
func NewCSV(r io.Reader) *CSV {
	return &CSV{scanner: bufio.NewScanner(r)}
}

// Next decodes the next record.
//
// Returns:
//   - types.Transaction: Decoded transaction
//   - error: io.EOF at end of input, a types.ErrMalformedRecord wrap for
//     undecodable records, or the underlying read error
func (c *CSV) Next(ctx context.Context) (types.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return types.Transaction{}, err
	}

	// Skip the header line without inspecting it.
	if c.line == 0 {
		if !c.scanner.Scan() {
			return types.Transaction{}, c.eofOrErr()
		}
		c.line++
	}

	if !c.scanner.Scan() {
		return types.Transaction{}, c.eofOrErr()
	}
	line := c.scanner.Text()
	c.line++

	return decodeTransaction(line, c.line-1)
}

// eofOrErr distinguishes clean end-of-input from a failed read.
func (c *CSV) eofOrErr() error {
	if err := c.scanner.Err(); err != nil {
		return fmt.Errorf("reading line %d: %w", c.line, err)
	}

	return io.EOF
}

// decodeTransaction tokenizes one record line.
//
// Line numbers are 0-based with the header at line 0.
func decodeTransaction(line string, lineNo int) (types.Transaction, error) {
	fields := strings.SplitN(line, ",", 5)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	kind, ok := types.ParseKind(fields[0])
	if !ok {
		return types.Transaction{}, fieldError("type", lineNo)
	}

	if len(fields) < 2 {
		return types.Transaction{}, fieldError("client", lineNo)
	}
	client, err := strconv.ParseUint(fields[1], 10, 16)
	if err != nil {
		return types.Transaction{}, fieldError("client", lineNo)
	}

	if len(fields) < 3 {
		return types.Transaction{}, fieldError("tx", lineNo)
	}
	tx, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return types.Transaction{}, fieldError("tx", lineNo)
	}

	record := types.Transaction{
		Kind:   kind,
		Client: types.ClientID(client),
		Tx:     types.TransactionID(tx),
	}

	if kind == types.KindDeposit || kind == types.KindWithdrawal {
		if len(fields) < 4 {
			return types.Transaction{}, fieldError("amount", lineNo)
		}
		amount, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return types.Transaction{}, fieldError("amount", lineNo)
		}
		record.Amount = amount
	}

	return record, nil
}

// fieldError reports a missing or undecodable field.
func fieldError(field string, lineNo int) error {
	return fmt.Errorf("%w: missing or invalid %s in line %d", types.ErrMalformedRecord, field, lineNo)
}

// EncodeTransaction serializes a transaction into one CSV record line
// (without trailing newline).
//
// Dispute, resolve and chargeback records leave the amount column empty.
//
// Parameters:
//   - tx: Transaction to serialize
//
// Returns:
//   - string: CSV record, e.g. "deposit,1,1,3.4" or "dispute,59,999,"
func EncodeTransaction(tx types.Transaction) string {
	amount := ""
	if tx.Kind == types.KindDeposit || tx.Kind == types.KindWithdrawal {
		amount = strconv.FormatFloat(tx.Amount, 'f', -1, 64)
	}

	return fmt.Sprintf("%s,%d,%d,%s", tx.Kind, tx.Client, tx.Tx, amount)
}

// TransactionWriter serializes transactions to the transaction CSV format.
//
// Used by the generators and tests to produce replayable datasets. The
// header is written before the first record.
type TransactionWriter struct {
	w           *bufio.Writer
	wroteHeader bool
}

// NewTransactionWriter creates a buffered transaction CSV writer.
//
// Parameters:
//   - w: Destination writer
//
// Returns:
//   - *TransactionWriter: Initialized writer; call Flush when done
func NewTransactionWriter(w io.Writer) *TransactionWriter {
	return &TransactionWriter{w: bufio.NewWriter(w)}
}

// Write appends one transaction record, emitting the header first if needed.
func (tw *TransactionWriter) Write(tx types.Transaction) error {
	if !tw.wroteHeader {
		if _, err := tw.w.WriteString(transactionHeader + "\n"); err != nil {
			return err
		}
		tw.wroteHeader = true
	}

	_, err := tw.w.WriteString(EncodeTransaction(tx) + "\n")

	return err
}

// Flush writes any buffered records to the underlying writer.
func (tw *TransactionWriter) Flush() error {
	return tw.w.Flush()
}

// OutputWriter serializes balance summaries to CSV.
//
// The column order is client, available, held, total, locked. The header is
// written before the first record.
type OutputWriter struct {
	w           *bufio.Writer
	wroteHeader bool
}

// NewOutputWriter creates a buffered balance summary CSV writer.
//
// Parameters:
//   - w: Destination writer (typically os.Stdout)
//
// Returns:
//   - *OutputWriter: Initialized writer; call Flush when done
func NewOutputWriter(w io.Writer) *OutputWriter {
	return &OutputWriter{w: bufio.NewWriter(w)}
}

// Write appends one balance summary record, emitting the header first if needed.
func (ow *OutputWriter) Write(out types.Output) error {
	if !ow.wroteHeader {
		if _, err := ow.w.WriteString(outputHeader + "\n"); err != nil {
			return err
		}
		ow.wroteHeader = true
	}

	record := fmt.Sprintf("%d,%s,%s,%s,%t\n",
		out.Client,
		strconv.FormatFloat(out.Available, 'f', -1, 64),
		strconv.FormatFloat(out.Held, 'f', -1, 64),
		strconv.FormatFloat(out.Total, 'f', -1, 64),
		out.Locked,
	)
	_, err := ow.w.WriteString(record)

	return err
}

// Flush writes any buffered records to the underlying writer.
func (ow *OutputWriter) Flush() error {
	return ow.w.Flush()
}
