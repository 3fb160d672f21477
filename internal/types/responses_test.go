package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_ListEnvelope(t *testing.T) {
	t.Parallel()
	body := `{"data":[{"domain":"a.com"}],"meta":{"request_id":"r2","page":1},"usage":{"requests_today":5,"limit":100}}`
	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(body), &env))
	require.NoError(t, env.Validate())

	resp, err := Decode[[]Store](&env)
	require.NoError(t, err)
	assert.Equal(t, []Store{{Domain: "a.com"}}, resp.Data)
	assert.Equal(t, "r2", resp.Meta.RequestID)
	require.NotNil(t, resp.Meta.Page)
	assert.Equal(t, 1, *resp.Meta.Page)
	assert.Nil(t, resp.Meta.TotalPages, "absent pagination must stay absent")
	assert.Nil(t, resp.Meta.Timestamp)
	assert.Equal(t, &Usage{RequestsToday: intp(5), Limit: intp(100)}, resp.Usage)
}

func TestDecode_NullData(t *testing.T) {
	t.Parallel()
	env := Envelope{Data: json.RawMessage("null"), Meta: Meta{RequestID: "r"}}
	resp, err := Decode[*Account](&env)
	require.NoError(t, err)
	assert.Nil(t, resp.Data)
	assert.Nil(t, resp.Usage)
}

func TestDecode_ShapeMismatch(t *testing.T) {
	t.Parallel()
	env := Envelope{Data: json.RawMessage(`{"domain":"a.com"}`), Meta: Meta{RequestID: "r"}}
	_, err := Decode[[]Store](&env)
	assert.Error(t, err)
}

func intp(n int) *int { return &n }

func TestEnvelopeValidate(t *testing.T) {
	t.Parallel()
	neg := -1
	cases := []struct {
		name string
		env  Envelope
		ok   bool
	}{
		{"complete", Envelope{Meta: Meta{RequestID: "r1"}}, true},
		{"missing request id", Envelope{}, false},
		{"negative page", Envelope{Meta: Meta{RequestID: "r1", Page: &neg}}, false},
		{"negative usage", Envelope{Meta: Meta{RequestID: "r1"}, Usage: &Usage{RequestsToday: intp(-3), Limit: intp(100)}}, false},
		{"zero usage", Envelope{Meta: Meta{RequestID: "r1"}, Usage: &Usage{RequestsToday: intp(0), Limit: intp(0)}}, true},
		{"usage without limit", Envelope{Meta: Meta{RequestID: "r1"}, Usage: &Usage{RequestsToday: intp(5)}}, false},
		{"usage without requests today", Envelope{Meta: Meta{RequestID: "r1"}, Usage: &Usage{Limit: intp(100)}}, false},
	}
	for _, c := range cases {
		err := c.env.Validate()
		if c.ok {
			assert.NoError(t, err, c.name)
		} else {
			assert.Error(t, err, c.name)
		}
	}
}

func TestEnvelope_PartialUsageRejected(t *testing.T) {
	t.Parallel()
	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(`{"data":null,"meta":{"request_id":"r1"},"usage":{"requests_today":5}}`), &env))
	assert.Error(t, env.Validate())
}

func TestErrorBody_LenientFields(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		body      string
		requestID string
		code      string
		message   string
	}{
		{"numeric request id", `{"error":{"code":"invalid_param","message":"bad page"},"request_id":12345}`, "12345", "invalid_param", "bad page"},
		{"numeric nested fields", `{"error":{"code":42,"message":"m","request_id":true}}`, "", "42", "m"},
		{"string error", `{"error":"quota blown","request_id":"r7"}`, "r7", "", "quota blown"},
		{"null fields", `{"error":{"code":null,"message":"m"},"request_id":null}`, "", "", "m"},
	}
	for _, c := range cases {
		var eb ErrorBody
		require.NoError(t, json.Unmarshal([]byte(c.body), &eb), c.name)
		assert.Equal(t, c.requestID, string(eb.RequestID), c.name)
		d := eb.Detail()
		require.NotNil(t, d, c.name)
		assert.Equal(t, c.code, string(d.Code), c.name)
		assert.Equal(t, c.message, string(d.Message), c.name)
	}

	var eb ErrorBody
	require.NoError(t, json.Unmarshal([]byte(`{"error":[1,2]}`), &eb))
	assert.Nil(t, eb.Detail())
}
