package fields

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	t.Run("date only", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"1990-04-12"`), &d))
		assert.Equal(t, time.April, d.Month())
		out, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, `"1990-04-12"`, string(out))
	})
	t.Run("rfc3339 is truncated to the day", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"1990-04-12T15:04:05Z"`), &d))
		assert.Equal(t, "1990-04-12", d.String())
	})
	t.Run("garbage", func(t *testing.T) {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`"next tuesday"`), &d))
		assert.Error(t, json.Unmarshal([]byte(`19900412`), &d))
	})
}
