package auth

import "time"

// UserProfile 对外输出的用户资料，结构上不含密码字段
type UserProfile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Nickname  string    `json:"nickname"`
	AvatarURL string    `json:"avatarUrl"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Gender    string    `json:"gender"`
	Status    string    `json:"status"`
	Remark    string    `json:"remark"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreatedUser 注册成功后返回的用户信息
type CreatedUser struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Username string `json:"username"`
}

func NewUserProfile(record *UserRecord) *UserProfile {
	u := record.User
	roles := make([]string, len(record.Roles))
	copy(roles, record.Roles)

	return &UserProfile{
		ID:        u.ID,
		Username:  u.Username,
		Nickname:  u.Nickname,
		AvatarURL: u.AvatarURL,
		Email:     u.Email,
		Mobile:    u.Mobile,
		Gender:    u.Gender,
		Status:    u.Status,
		Remark:    u.Remark,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// HasRole 判断角色列表中是否包含指定角色
func HasRole(roles []string, name string) bool {
	for _, r := range roles {
		if r == name {
			return true
		}
	}
	return false
}
