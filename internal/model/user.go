package model

// User 演示登录得到的用户，只存在于 JWT 中，不落库
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsLifetime bool   `json:"isLifetime"`
}
