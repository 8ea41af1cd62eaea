package exchange

import (
	"errors"
	"testing"

	"github.com/entraops/dlman/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestClassifyShellError(t *testing.T) {
	t.Run("module missing is terminal", func(t *testing.T) {
		err := classifyShellError("The term 'Connect-ExchangeOnline' is not recognized", nil)
		gt.True(t, errors.Is(err, model.ErrModuleNotInstalled))
	})

	t.Run("certificate problems are terminal", func(t *testing.T) {
		err := classifyShellError("Certificate with thumbprint ABC not found", nil)
		gt.True(t, errors.Is(err, model.ErrCertNotConfigured))
	})

	t.Run("anything else keeps the raw message", func(t *testing.T) {
		err := classifyShellError("Error: access to the address list service is denied", nil)
		gt.False(t, errors.Is(err, model.ErrModuleNotInstalled))
		gt.False(t, errors.Is(err, model.ErrCertNotConfigured))
		gt.S(t, err.Error()).Contains("shell command failed")
	})
}

func TestQuote(t *testing.T) {
	gt.Equal(t, Quote("sales@corp.com"), "'sales@corp.com'")
	gt.Equal(t, Quote("o'brien"), "'o''brien'")
	// A breakout attempt stays inside the literal
	gt.Equal(t, Quote("x'; Remove-DistributionGroup -Identity 'y"), "'x''; Remove-DistributionGroup -Identity ''y'")
	gt.Equal(t, Quote("$env:SECRET"), "'$env:SECRET'")
}

func TestAliasFromEmail(t *testing.T) {
	gt.Equal(t, aliasFromEmail("a.b@x.co"), "a_b_at_x_co")

	long := aliasFromEmail("very.long.local.part.that.keeps.going.and.going@some.deep.subdomain.example.com")
	gt.True(t, len(long) <= 64)
}

func TestDecodeRecords(t *testing.T) {
	type rec struct {
		Name string `json:"Name"`
	}

	t.Run("array", func(t *testing.T) {
		recs, err := decodeRecords[rec](`[{"Name":"a"},{"Name":"b"}]`)
		gt.NoError(t, err)
		gt.Equal(t, len(recs), 2)
	})

	t.Run("bare object", func(t *testing.T) {
		recs, err := decodeRecords[rec](`{"Name":"a"}`)
		gt.NoError(t, err)
		gt.Equal(t, len(recs), 1)
		gt.Equal(t, recs[0].Name, "a")
	})

	t.Run("empty", func(t *testing.T) {
		recs, err := decodeRecords[rec]("\n  ")
		gt.NoError(t, err)
		gt.Nil(t, recs)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := decodeRecords[rec]("WARNING: something")
		gt.Error(t, err)
	})
}
