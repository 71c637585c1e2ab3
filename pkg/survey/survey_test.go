/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package survey

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fieldnote/fieldnote/pkg/extensions"
	"github.com/fieldnote/fieldnote/pkg/grammar"
	"github.com/fieldnote/fieldnote/pkg/schema"
)

func newTestContext(first int) *Context {
	return &Context{
		Serials: schema.NewSerialNumberGenerator(first),
		Now: func() (schema.Date, schema.Time) {
			return schema.Date{Year: 2013, Month: 2, Day: 1},
				schema.Time{Hour: 1, Minute: 23, Second: 45}
		},
	}
}

func TestSightingTypeComposition(t *testing.T) {
	require := require.New(t)

	// sighting types inherit the numbering fields from their ancestor
	require.Equal(
		[]string{"azimuth", "date", "declination", "objectId", "objectType",
			"observationNum", "state", "time"},
		FixType.FieldNames())
	require.Equal(
		[]string{"date", "observationNum", "text", "time"},
		CommentType.FieldNames())

	require.Equal(schema.Kind_Date, FixType.Field("date").Kind())
	require.Nil(StationType.Field("observationNum"))
}

func TestSightingDefaults(t *testing.T) {
	require := require.New(t)
	ctx := newTestContext(10)

	rec, err := CommentType.NewRecord(ctx, map[string]any{"text": "spout seen"})
	require.NoError(err)
	require.Equal(10, rec.Get("observationNum"))
	require.Equal(schema.Date{Year: 2013, Month: 2, Day: 1}, rec.Get("date"))
	require.Equal(schema.Time{Hour: 1, Minute: 23, Second: 45}, rec.Get("time"))

	// explicit values must not consume the serial generator
	_, err = CommentType.NewRecord(ctx, map[string]any{
		"observationNum": 99,
		"date":           schema.Date{Year: 2013, Month: 2, Day: 2},
		"time":           schema.Time{},
		"text":           "calibration",
	})
	require.NoError(err)
	require.Equal(11, ctx.Serials.Peek())

	// without a session context the numbering fields stay null
	rec, err = CommentType.NewRecord(nil, map[string]any{"text": "note"})
	require.NoError(err)
	require.Nil(rec.Get("observationNum"))
}

func TestFixValidation(t *testing.T) {
	require := require.New(t)

	_, err := FixType.NewRecord(nil, map[string]any{"azimuth": 360.0})
	require.ErrorIs(err, schema.ErrOutOfRangeError)

	_, err = FixType.NewRecord(nil, map[string]any{"objectType": "Boat"})
	require.ErrorIs(err, schema.ErrOutOfRangeError)

	// terse aliases translate to canonical object types
	rec, err := FixType.NewRecord(nil, map[string]any{"objectType": "p"})
	require.NoError(err)
	require.Equal("Pod", rec.Get("objectType"))
}

const formattedSurvey = "Pod 1 Whales 2 Calves 1 Singers 0\n" +
	`00010 2/1/13 1:23:45 Fix Dec 91:00:00 Az 2:30:00 Pod 1 State ""` + "\n" +
	`00011 2/1/13 1:23:50 Fix Dec 91:00:00 Az 2:45:00 Pod 1 State ""` + "\n"

func newSurveyRecords(t *testing.T) []schema.IRecord {
	t.Helper()
	require := require.New(t)

	date := schema.Date{Year: 2013, Month: 2, Day: 1}

	pod, err := PodType.NewRecord(nil, map[string]any{
		"id": 1, "numWhales": 2, "numCalves": 1, "numSingers": 0,
	})
	require.NoError(err)

	fix1, err := FixType.NewRecord(nil, map[string]any{
		"observationNum": 10, "date": date,
		"time":        schema.Time{Hour: 1, Minute: 23, Second: 45},
		"declination": 91.0, "azimuth": 2.5, "objectType": "Pod", "objectId": 1,
	})
	require.NoError(err)

	fix2, err := FixType.NewRecord(nil, map[string]any{
		"observationNum": 11, "date": date,
		"time":        schema.Time{Hour: 1, Minute: 23, Second: 50},
		"declination": 91.0, "azimuth": 2.75, "objectType": "Pod", "objectId": 1,
	})
	require.NoError(err)

	return []schema.IRecord{pod, fix1, fix2}
}

func TestGrammarRoundTrip(t *testing.T) {
	require := require.New(t)
	f := NewDocumentFormat()
	records := newSurveyRecords(t)

	require.Equal(formattedSurvey, f.FormatDocument(records))

	got, err := f.ParseDocument(formattedSurvey, 0, nil)
	require.NoError(err)
	require.Len(got, len(records))
	for i := range records {
		require.True(records[i].Equal(got[i]), "record %d", i)
	}
}

func TestGrammarSetupRecords(t *testing.T) {
	require := require.New(t)
	f := NewDocumentFormat()

	lines := `Station 1 "Yellow House" Lat 20.028 Lon -155.655 El 52.5` + "\n" +
		`Theodolite 1 "Sokkia DT4" AzOff 0:00:00 DecOff 0:00:00` + "\n" +
		`Reference 1 "Puu Hill" Az 123:15:00` + "\n" +
		`Observer HW "Harold Whitehead"` + "\n"

	records, err := f.ParseDocument(lines, 0, nil)
	require.NoError(err)
	require.Len(records, 4)
	require.Equal("Yellow House", records[0].Get("name"))
	require.Equal(123.25, records[2].Get("azimuth"))
	require.Equal("HW", records[3].Get("initials"))

	require.Equal(lines, f.FormatDocument(records))
}

func TestInterpreterCommands(t *testing.T) {
	require := require.New(t)
	i := NewInterpreter(NewDocumentFormat())
	ctx := newTestContext(10)

	rec, err := i.Interpret("p1 2 1 0", ctx)
	require.NoError(err)
	require.Equal("Pod", rec.Type().Name())
	require.Equal(1, rec.Get("id"))
	require.Equal(2, rec.Get("numWhales"))

	rec, err = i.Interpret("f 91:00:00 2:30:00 p 1", ctx)
	require.NoError(err)
	require.Equal("Fix", rec.Type().Name())
	require.Equal(10, rec.Get("observationNum"))
	require.Equal(91.0, rec.Get("declination"))
	require.Equal(2.5, rec.Get("azimuth"))
	require.Equal("Pod", rec.Get("objectType"))
	require.Equal(schema.Date{Year: 2013, Month: 2, Day: 1}, rec.Get("date"))
	require.Nil(rec.Get("state"))

	rec, err = i.Interpret(`c "lost sight of pod"`, ctx)
	require.NoError(err)
	require.Equal("Comment", rec.Type().Name())
	require.Equal(11, rec.Get("observationNum"))
	require.Equal("lost sight of pod", rec.Get("text"))
}

func TestRegister(t *testing.T) {
	require := require.New(t)
	reg := extensions.NewRegistry()
	Register(reg)

	f, ok := reg.DocumentFormat(GrammarName)
	require.True(ok)
	require.Equal(GrammarName, f.Name())

	i, ok := reg.NewInterpreter(GrammarName)
	require.True(ok)
	require.Equal([]string{"c", "f", "o", "p", "r", "s", "t"}, i.CommandNames())
}

func TestGrammarDispatch(t *testing.T) {
	require := require.New(t)
	f := NewDocumentFormat()

	_, err := f.ParseDocument("Vessel 1\n", 0, nil)
	require.ErrorIs(err, grammar.ErrBadFormatError)
	var perr *grammar.ParseError
	require.ErrorAs(err, &perr)
	require.Equal(1, perr.Line)
}
