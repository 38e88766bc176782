package model

type MindMapNode struct {
	ID       string         `json:"id"`
	Topic    string         `json:"topic"`
	Children []*MindMapNode `json:"children,omitempty"`
}

// Depth 根节点记为 1
func (n *MindMapNode) Depth() int {
	if n == nil {
		return 0
	}
	max := 0
	for _, c := range n.Children {
		if d := c.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

func (n *MindMapNode) Count() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// Walk 先序遍历
func (n *MindMapNode) Walk(fn func(node *MindMapNode)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
