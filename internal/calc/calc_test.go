package calc

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govalues/bigdecimal"
)

func TestEvaluate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			input string
			acc   int
			want  string
		}{
			{"* 10 + 1.23 4.56", 100, "57.9"},
			{"+ 1 2", 100, "3"},
			{"- 5 15", 100, "-10"},
			{"- 4120000 0.00100312", 100, "4119999.99899688"},
			{"* 3124.3312 -12.41551", 100, "-38790.165256912"},
			{"/ 1 3", 5, "0.33333"},
			{"/ 4 13", 5, "0.30768"},
			{"/ 13 13", 5, "1"},
			{"/ 5 121", 6, "0.04132"},
			{"^ 2 10", 100, "1024"},
			{"^ 2 -2", 100, "0.25"},
			{"^ 2 0", 100, "1"},
			{"inv 20", 100, "0.05"},
			{"inv 3", 5, "0.33333"},
			{"neg abs -3", 100, "-3"},
			{"inc 4120000", 100, "4120001"},
			{"dec 4120000", 100, "4119999"},
			{"max 1 2", 100, "2"},
			{"min 1 2", 100, "1"},
			{"5", 100, "5"},
			{"  +   1\t2\n", 100, "3"},
			{"+ 1.9 1", 0, "2"},
		}
		for _, tt := range tests {
			got, err := Evaluate(tt.input, tt.acc)
			if err != nil {
				t.Errorf("Evaluate(%q, %v) failed: %v", tt.input, tt.acc, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("Evaluate(%q, %v) = %q, want %q", tt.input, tt.acc, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			input string
			want  error
		}{
			{"", ErrNoTokens},
			{"   ", ErrNoTokens},
			{"+ 1", ErrOperands},
			{"inv", ErrOperands},
			{"1 2", ErrLeftover},
			{"/ 1 0", bigdecimal.ErrDivisionByZero},
			{"inv 0", bigdecimal.ErrDivisionByZero},
			{"^ 0 -1", bigdecimal.ErrDivisionByZero},
			{"^ 2 0.5", ErrInvalidPower},
			{"^ 2 99999999999999999999", ErrInvalidPower},
			{"+ 1 x", bigdecimal.ErrInvalidDecimal},
			{"+ 1 1e5", bigdecimal.ErrInvalidDecimal},
		}
		for _, tt := range tests {
			_, err := Evaluate(tt.input, 100)
			require.ErrorIs(t, err, tt.want, "Evaluate(%q)", tt.input)
		}
	})
}

func TestEvaluator_ZeroValue(t *testing.T) {
	var ev Evaluator
	got, err := ev.Evaluate("/ 7 2")
	require.NoError(t, err)
	assert.Equal(t, "0", got.String())
}

func TestEvaluator_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ev := New(10, logger)

	got, err := ev.Evaluate("+ 1 inv 4")
	require.NoError(t, err)
	assert.Equal(t, "1.25", got.String())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "inv", rec["op"])
	assert.Equal(t, "0.25", rec["result"])

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	assert.Equal(t, "+", rec["op"])
	assert.Equal(t, "1", rec["left"])
	assert.Equal(t, "0.25", rec["right"])
	assert.Equal(t, "1.25", rec["result"])
}

func TestOperators(t *testing.T) {
	ops := Operators()
	assert.IsIncreasing(t, ops)
	assert.Contains(t, ops, "inv")
	assert.Contains(t, ops, "/")
	assert.Len(t, ops, len(unary)+len(binary))
}
