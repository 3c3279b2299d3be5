package scenes

import (
	"errors"
	"fmt"

	"github.com/decker502/thunder/pkg/utils"
)

// 屏幕四条边的编号
const (
	EdgeTop = iota
	EdgeRight
	EdgeBottom
	EdgeLeft

	edgeCount
)

// ErrUnreachableEdge 边编号不在 0~3 之间
var ErrUnreachableEdge = errors.New("unknown screen edge")

// PickEdgeOrigin 在指定的屏幕边上随机选一个整数坐标作为闪电起点
//
// side: 0 上边, 1 右边, 2 下边, 3 左边
func PickEdgeOrigin(side, width, height int, src utils.RandomSource) (utils.Vector2, error) {
	var x, y int
	var err error

	switch side {
	case EdgeTop:
		x, err = utils.RandomInt(src, width)
	case EdgeRight:
		x = width
		y, err = utils.RandomInt(src, height)
	case EdgeBottom:
		x, err = utils.RandomInt(src, width)
		y = height
	case EdgeLeft:
		y, err = utils.RandomInt(src, height)
	default:
		return utils.Vector2{}, fmt.Errorf("%w: %d", ErrUnreachableEdge, side)
	}
	if err != nil {
		return utils.Vector2{}, fmt.Errorf("pick origin on edge %d: %w", side, err)
	}
	return utils.NewVector2(float64(x), float64(y)), nil
}

// PickRandomEdgeOrigin 等概率选一条边，再在边上选起点
func PickRandomEdgeOrigin(width, height int, src utils.RandomSource) (utils.Vector2, error) {
	side, err := utils.RandomInt(src, edgeCount)
	if err != nil {
		return utils.Vector2{}, err
	}
	return PickEdgeOrigin(side, width, height, src)
}
