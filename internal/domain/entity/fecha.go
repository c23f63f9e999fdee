package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// LayoutFecha formato con el que se guardan las fechas en el almacén ("Y-m-d H:i:s").
const LayoutFecha = "2006-01-02 15:04:05"

// Fecha marca de tiempo serializada como "2006-01-02 15:04:05".
// Al leer también acepta RFC 3339.
type Fecha struct {
	time.Time
}

// NewFecha trunca t a segundos.
func NewFecha(t time.Time) Fecha {
	return Fecha{Time: t.Truncate(time.Second)}
}

func (f Fecha) String() string {
	if f.IsZero() {
		return ""
	}
	return f.Format(LayoutFecha)
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(f.Format(LayoutFecha))
}

func (f *Fecha) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		f.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("fecha: %w", err)
	}
	if s == "" {
		f.Time = time.Time{}
		return nil
	}
	if t, err := time.ParseInLocation(LayoutFecha, s, time.Local); err == nil {
		f.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("fecha %q: formato no reconocido", s)
	}
	f.Time = t
	return nil
}
