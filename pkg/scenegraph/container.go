package scenegraph

import "github.com/hajimehoshi/ebiten/v2"

// Container 有序的子节点集合
//
// Alpha 作用于整棵子树；允许为负值（淡出过头），负值和 0 一样不绘制。
type Container struct {
	Alpha    float64
	children []Node
}

// NewContainer 创建完全不透明的空容器
func NewContainer() *Container {
	return &Container{Alpha: 1}
}

// AddChild 按顺序追加子节点
func (c *Container) AddChild(nodes ...Node) {
	c.children = append(c.children, nodes...)
}

// RemoveChildren 移除全部子节点
func (c *Container) RemoveChildren() {
	clear(c.children)
	c.children = c.children[:0]
}

// Children 返回子节点（只读视图）
func (c *Container) Children() []Node {
	return c.children
}

// Len 子节点数量
func (c *Container) Len() int {
	return len(c.children)
}

// Draw 实现 Node，子节点按添加顺序绘制
func (c *Container) Draw(dst *ebiten.Image, alpha float64) {
	if alpha <= 0 || c.Alpha <= 0 {
		return
	}
	a := alpha * c.Alpha
	for _, child := range c.children {
		child.Draw(dst, a)
	}
}
