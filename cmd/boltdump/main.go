// boltdump 在无窗口环境下生成一道闪电并以 YAML 输出线段链
//
// 用法:
//
//	go run ./cmd/boltdump --ax 0 --ay 0 --bx 100 --by 0 --seed 1 --divisor 8
//	go run ./cmd/boltdump --config data/thunder.yaml --samples 5
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/decker502/thunder/pkg/config"
	"github.com/decker502/thunder/pkg/effects"
	"github.com/decker502/thunder/pkg/utils"
	"gopkg.in/yaml.v3"
)

var (
	axFlag        = flag.Float64("ax", 0, "Start point X")
	ayFlag        = flag.Float64("ay", 0, "Start point Y")
	bxFlag        = flag.Float64("bx", 100, "End point X")
	byFlag        = flag.Float64("by", 0, "End point Y")
	seedFlag      = flag.Int64("seed", 1, "Random seed")
	divisorFlag   = flag.Float64("divisor", 0, "Jitter divisor, 0 keeps the config value")
	thicknessFlag = flag.Float64("thickness", 0, "Segment thickness, 0 keeps the config value")
	samplesFlag   = flag.Int("samples", 0, "Number of evenly spaced GetPoint samples to include")
	configFlag    = flag.String("config", "", "Optional YAML config providing the bolt section")
)

// point YAML 中的坐标
type point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type segmentDump struct {
	A         point   `yaml:"a"`
	B         point   `yaml:"b"`
	Thickness float64 `yaml:"thickness"`
}

type sampleDump struct {
	Fraction float64 `yaml:"fraction"`
	Point    point   `yaml:"point"`
}

type boltDump struct {
	Seed     int64              `yaml:"seed"`
	A        point              `yaml:"a"`
	B        point              `yaml:"b"`
	Config   effects.BoltConfig `yaml:"config"`
	Segments []segmentDump      `yaml:"segments"`
	Samples  []sampleDump       `yaml:"samples,omitempty"`
}

type options struct {
	a, b      utils.Vector2
	seed      int64
	divisor   float64
	thickness float64
	samples   int
	bolt      config.BoltSection
}

func toPoint(v utils.Vector2) point {
	return point{X: v.X, Y: v.Y}
}

// buildDump 生成闪电，不创建贴图
func buildDump(opts options) (*boltDump, error) {
	cfg := opts.bolt.BoltConfig
	if opts.divisor > 0 {
		cfg.JitterDivisor = opts.divisor
	}
	thickness := opts.bolt.Thickness
	if opts.thickness > 0 {
		thickness = opts.thickness
	}

	bolt, err := effects.NewBolt(opts.a, opts.b, thickness, nil, cfg, utils.NewRandomSource(opts.seed))
	if err != nil {
		return nil, err
	}

	dump := &boltDump{
		Seed:   opts.seed,
		A:      toPoint(opts.a),
		B:      toPoint(opts.b),
		Config: cfg,
	}
	for _, segment := range bolt.Segments() {
		dump.Segments = append(dump.Segments, segmentDump{
			A:         toPoint(segment.A),
			B:         toPoint(segment.B),
			Thickness: segment.Thickness,
		})
	}
	if opts.samples > 1 {
		for i := 0; i < opts.samples; i++ {
			fraction := float64(i) / float64(opts.samples-1)
			dump.Samples = append(dump.Samples, sampleDump{
				Fraction: fraction,
				Point:    toPoint(bolt.GetPoint(fraction)),
			})
		}
	}
	return dump, nil
}

func writeDump(w io.Writer, dump *boltDump) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(dump); err != nil {
		return fmt.Errorf("encode bolt: %w", err)
	}
	return encoder.Close()
}

func main() {
	flag.Parse()

	thunderConfig := config.DefaultThunderConfig()
	if *configFlag != "" {
		loaded, err := config.LoadThunderConfig(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			os.Exit(1)
		}
		thunderConfig = loaded
	}

	dump, err := buildDump(options{
		a:         utils.NewVector2(*axFlag, *ayFlag),
		b:         utils.NewVector2(*bxFlag, *byFlag),
		seed:      *seedFlag,
		divisor:   *divisorFlag,
		thickness: *thicknessFlag,
		samples:   *samplesFlag,
		bolt:      thunderConfig.Bolt,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	if err := writeDump(os.Stdout, dump); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
