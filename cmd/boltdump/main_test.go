package main

import (
	"bytes"
	"testing"

	"github.com/decker502/thunder/pkg/config"
	"github.com/decker502/thunder/pkg/utils"
	"gopkg.in/yaml.v3"
)

func testOptions() options {
	return options{
		a:       utils.NewVector2(0, 0),
		b:       utils.NewVector2(100, 0),
		seed:    1,
		divisor: 8,
		samples: 3,
		bolt:    config.DefaultThunderConfig().Bolt,
	}
}

// TestBuildDump 线段链首尾相接并落在端点上
func TestBuildDump(t *testing.T) {
	dump, err := buildDump(testOptions())
	if err != nil {
		t.Fatalf("buildDump failed: %v", err)
	}

	if got := len(dump.Segments); got != 13 {
		t.Errorf("segments = %d, 期望 13", got)
	}
	if first := dump.Segments[0].A; first != (point{0, 0}) {
		t.Errorf("first point = %v, 期望 (0, 0)", first)
	}
	if last := dump.Segments[len(dump.Segments)-1].B; last != (point{100, 0}) {
		t.Errorf("last point = %v, 期望 (100, 0)", last)
	}
	for i := 1; i < len(dump.Segments); i++ {
		if dump.Segments[i].A != dump.Segments[i-1].B {
			t.Fatalf("segment %d does not start where segment %d ends", i, i-1)
		}
	}

	if len(dump.Samples) != 3 {
		t.Fatalf("samples = %d, 期望 3", len(dump.Samples))
	}
	if dump.Samples[0].Point != (point{0, 0}) || dump.Samples[2].Point != (point{100, 0}) {
		t.Errorf("sample endpoints = %v, %v", dump.Samples[0].Point, dump.Samples[2].Point)
	}
}

func TestBuildDumpOverrides(t *testing.T) {
	opts := testOptions()
	opts.thickness = 7
	opts.divisor = 50

	dump, err := buildDump(opts)
	if err != nil {
		t.Fatalf("buildDump failed: %v", err)
	}
	if dump.Config.JitterDivisor != 50 {
		t.Errorf("divisor = %v, 期望 50", dump.Config.JitterDivisor)
	}
	if len(dump.Segments) != 3 {
		t.Errorf("segments = %d, 期望 3", len(dump.Segments))
	}
	if dump.Segments[0].Thickness != 7 {
		t.Errorf("thickness = %v, 期望 7", dump.Segments[0].Thickness)
	}
}

func TestBuildDumpInvalidConfig(t *testing.T) {
	opts := testOptions()
	opts.bolt.Sway = 0
	if _, err := buildDump(opts); err == nil {
		t.Error("expected error for zero sway")
	}
}

// TestWriteDump 输出可以被 YAML 解析回来
func TestWriteDump(t *testing.T) {
	dump, err := buildDump(testOptions())
	if err != nil {
		t.Fatalf("buildDump failed: %v", err)
	}

	var buf bytes.Buffer
	if err := writeDump(&buf, dump); err != nil {
		t.Fatalf("writeDump failed: %v", err)
	}

	var decoded boltDump
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}
	if decoded.Seed != 1 || len(decoded.Segments) != len(dump.Segments) {
		t.Errorf("decoded seed=%d segments=%d", decoded.Seed, len(decoded.Segments))
	}
	if decoded.Config.Sway != 60 {
		t.Errorf("decoded sway = %v, 期望 60", decoded.Config.Sway)
	}
}
