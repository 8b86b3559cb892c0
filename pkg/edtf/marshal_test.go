package edtf

import (
	"encoding/json"
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	type record struct {
		Published Edtf `json:"published"`
		Revised   Date `json:"revised"`
	}
	in := record{
		Published: mustParse(t, "2019-07~/2020-08-09"),
		Revised:   mustParseDate(t, "2021-XX"),
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"published":"2019-07~/2020-08-09","revised":"2021-XX"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var out record
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("Unmarshal = %+v, want %+v", out, in)
	}
}

func TestUnmarshalRejectsInvalid(t *testing.T) {
	var e Edtf
	if err := e.UnmarshalText([]byte("2019-13-01")); err == nil {
		t.Error("invalid input should not unmarshal")
	}
	var d Date
	if err := d.UnmarshalText([]byte("2019/2020")); err == nil {
		t.Error("interval should not unmarshal into Date")
	}
}

func TestMarshalZeroValue(t *testing.T) {
	var e Edtf
	if _, err := e.MarshalText(); err == nil {
		t.Error("zero Edtf should not marshal")
	}
	var d Date
	if _, err := d.MarshalText(); err == nil {
		t.Error("zero Date should not marshal")
	}
}
