/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

// Package survey declares the shore survey grammar: the record types a
// shore-based marine mammal survey produces, their text formats, and the
// terse commands observers type during a watch.
package survey

import (
	"github.com/fieldnote/fieldnote/pkg/schema"
)

// GrammarName is the extension name of the shore survey grammar.
const GrammarName = "Shore Survey Grammar 1.0"

// Context carries the per-session state record defaults draw on: the
// observation serial numbers and the current date and time. It is passed
// as the ctx argument of record construction and command interpretation.
type Context struct {
	Serials *schema.SerialNumberGenerator
	Now     func() (schema.Date, schema.Time)
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// numberedType is the shared ancestor of all sighting records: a serial
// observation number plus the date and time of the observation. The
// defaults draw on the session context, lazily, so loading a file never
// consumes serial numbers.
var numberedType = schema.NewRecordType(schema.RecordTypeDef{
	Name: "Numbered",
	Fields: map[string]schema.IField{
		"observationNum": schema.NewInteger(schema.IntegerDef{
			Min: intPtr(0),
			Doc: "serial observation number",
		}),
		"date": schema.NewDate(schema.DateDef{Doc: "observation date"}),
		"time": schema.NewTime(schema.TimeDef{Doc: "observation time"}),
	},
	Defaults: []schema.DefaultRule{
		schema.Provider("observationNum", func(ctx any) any {
			if c, ok := ctx.(*Context); ok && c.Serials != nil {
				return c.Serials.Next()
			}
			return nil
		}),
		schema.JointProvider([]string{"date", "time"}, func(ctx any) []any {
			if c, ok := ctx.(*Context); ok && c.Now != nil {
				date, time := c.Now()
				return []any{date, time}
			}
			return []any{nil, nil}
		}),
	},
})

// StationType describes the shore station observations are made from.
var StationType = schema.NewRecordType(schema.RecordTypeDef{
	Name: "Station",
	Fields: map[string]schema.IField{
		"id":   schema.NewInteger(schema.IntegerDef{Min: intPtr(0)}),
		"name": schema.NewString(schema.StringDef{}),
		"latitude": schema.NewFloat(schema.FloatDef{
			Min: floatPtr(-90), Max: floatPtr(90),
			Units: "degrees",
		}),
		"longitude": schema.NewFloat(schema.FloatDef{
			Min: floatPtr(-180), Max: floatPtr(180),
			Units: "degrees",
		}),
		"elevation": schema.NewFloat(schema.FloatDef{Units: "meters"}),
	},
})

// TheodoliteType describes the instrument and its mounting offsets.
var TheodoliteType = schema.NewRecordType(schema.RecordTypeDef{
	Name: "Theodolite",
	Fields: map[string]schema.IField{
		"id":   schema.NewInteger(schema.IntegerDef{Min: intPtr(0)}),
		"name": schema.NewString(schema.StringDef{}),
		"azimuthOffset": schema.NewFloat(schema.FloatDef{
			Min: floatPtr(0), Max: floatPtr(360), MaxExclusive: true,
			Units: "degrees",
		}),
		"declinationOffset": schema.NewFloat(schema.FloatDef{Units: "degrees"}),
	},
})

// ReferenceType is a landmark of known azimuth used to orient the
// theodolite.
var ReferenceType = schema.NewRecordType(schema.RecordTypeDef{
	Name: "Reference",
	Fields: map[string]schema.IField{
		"id":   schema.NewInteger(schema.IntegerDef{Min: intPtr(0)}),
		"name": schema.NewString(schema.StringDef{}),
		"azimuth": schema.NewFloat(schema.FloatDef{
			Min: floatPtr(0), Max: floatPtr(360), MaxExclusive: true,
			Units: "degrees",
		}),
	},
})

// ObserverType identifies who is on watch.
var ObserverType = schema.NewRecordType(schema.RecordTypeDef{
	Name: "Observer",
	Fields: map[string]schema.IField{
		"initials": schema.NewString(schema.StringDef{}),
		"name":     schema.NewString(schema.StringDef{}),
	},
})

// PodType is a group of whales under observation.
var PodType = schema.NewRecordType(schema.RecordTypeDef{
	Name: "Pod",
	Fields: map[string]schema.IField{
		"id":         schema.NewInteger(schema.IntegerDef{Min: intPtr(0)}),
		"numWhales":  schema.NewInteger(schema.IntegerDef{Min: intPtr(0)}),
		"numCalves":  schema.NewInteger(schema.IntegerDef{Min: intPtr(0)}),
		"numSingers": schema.NewInteger(schema.IntegerDef{Min: intPtr(0)}),
	},
})

// FixType is a theodolite fix: declination and azimuth to an object at a
// moment in time.
var FixType = schema.NewRecordType(schema.RecordTypeDef{
	Name:      "Fix",
	Ancestors: []schema.IRecordType{numberedType},
	Fields: map[string]schema.IField{
		"declination": schema.NewFloat(schema.FloatDef{
			Min: floatPtr(0), Max: floatPtr(180),
			Units: "degrees",
		}),
		"azimuth": schema.NewFloat(schema.FloatDef{
			Min: floatPtr(0), Max: floatPtr(360), MaxExclusive: true,
			Units: "degrees",
		}),
		"objectType": schema.NewString(schema.StringDef{
			Values: []string{"Pod", "Vessel", "Reference", "Other"},
			Translations: map[string]string{
				"p": "Pod",
				"v": "Vessel",
				"r": "Reference",
			},
		}),
		"objectId": schema.NewInteger(schema.IntegerDef{Min: intPtr(0)}),
		"state":    schema.NewString(schema.StringDef{Doc: "behavioral state"}),
	},
})

// CommentType is a free-text remark in the observation sequence.
var CommentType = schema.NewRecordType(schema.RecordTypeDef{
	Name:      "Comment",
	Ancestors: []schema.IRecordType{numberedType},
	Fields: map[string]schema.IField{
		"text": schema.NewString(schema.StringDef{}),
	},
})
