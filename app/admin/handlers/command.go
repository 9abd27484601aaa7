package handlers

import (
	"errors"
	"fmt"
	"github.com/Edward-Brock/x-dimension/app/server/constants"
	"github.com/spf13/pflag"
)

const (
	CommandSeed        = "seed"
	CommandGrant       = "grant"
	CommandCreateAdmin = "create-admin"
)

// Command 解析后的子命令
type Command struct {
	Name     string
	Username string
	Nickname string
	Password string
	Role     string
}

const usage = `usage: admin <command> [flags]

commands:
  seed                                   创建缺失的内置角色
  grant --user <username> --role <name>  给用户追加角色
  create-admin --user <username> --password <password> [--nickname <name>]
                                         注册用户并授予管理员角色`

func ParseCommand(args []string) (*Command, error) {
	if len(args) == 0 {
		return nil, errors.New(usage)
	}

	cmd := &Command{Name: args[0]}
	fs := pflag.NewFlagSet(cmd.Name, pflag.ContinueOnError)

	switch cmd.Name {
	case CommandSeed:
	case CommandGrant:
		fs.StringVarP(&cmd.Username, "user", "u", "", "用户名")
		fs.StringVarP(&cmd.Role, "role", "r", "", "角色名")
	case CommandCreateAdmin:
		fs.StringVarP(&cmd.Username, "user", "u", "", "用户名")
		fs.StringVarP(&cmd.Nickname, "nickname", "n", "", "昵称，默认与用户名相同")
		fs.StringVarP(&cmd.Password, "password", "p", "", "密码")
	default:
		return nil, fmt.Errorf("unknown command %q\n%s", cmd.Name, usage)
	}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	switch cmd.Name {
	case CommandGrant:
		if cmd.Username == "" || cmd.Role == "" {
			return nil, errors.New("grant requires --user and --role")
		}
	case CommandCreateAdmin:
		if cmd.Username == "" || cmd.Password == "" {
			return nil, errors.New("create-admin requires --user and --password")
		}
		if cmd.Nickname == "" {
			cmd.Nickname = cmd.Username
		}
		cmd.Role = constants.RoleNameAdmin
	}

	return cmd, nil
}
