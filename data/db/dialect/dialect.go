package dialect

import (
	stdErrors "errors"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	core "sqlwrap/data/db"
)

// Name 标准化的数据库方言名称
type Name string

const (
	NameSQLite   Name = "sqlite"
	NamePostgres Name = "postgres"
	NameUnknown  Name = ""
)

// pqUniqueViolation Postgres SQLSTATE 23505
const pqUniqueViolation pq.ErrorCode = "23505"

// Dialect 表示当前数据库的方言能力
//
// 目前只抽象封装层实际用到的能力：
//   - Rebind: 预编译前的占位符改写
//   - IsUniqueViolation: 唯一键/主键冲突错误识别
type Dialect struct {
	name Name
}

// New 根据字符串构造方言（大小写不敏感）
func New(name string) Dialect {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sqlite", "sqlite3":
		return Dialect{name: NameSQLite}
	case "postgres", "postgresql", "pq":
		return Dialect{name: NamePostgres}
	default:
		return Dialect{name: NameUnknown}
	}
}

// FromHandle 从实现了 IDialectNameProvider 的句柄推断方言，否则返回 Unknown
func FromHandle(h any) Dialect {
	if p, ok := h.(core.IDialectNameProvider); ok {
		return New(p.GetDialectName())
	}
	return Dialect{name: NameUnknown}
}

// Name 返回标准化方言名
func (d Dialect) Name() Name {
	return d.name
}

// Rebind 将通用占位符 ? 转换为方言特定形式。
//
// 目前仅对 Postgres 做替换，将 ? 依次替换为 $1、$2...；以下区域内的 ? 保持原样：
//   - 单引号字符串字面量与双引号标识符
//   - -- 行注释与 /* */ 块注释（不支持嵌套）
//   - $$...$$ 与 $tag$...$tag$ 美元引用块
//
// 其他方言不做修改。
func (d Dialect) Rebind(query string) string {
	if query == "" || d.name != NamePostgres {
		return query
	}

	var sb strings.Builder
	sb.Grow(len(query) + 4)
	argIndex := 1
	for i := 0; i < len(query); {
		if end := skipQuoted(query, i); end > i {
			sb.WriteString(query[i:end])
			i = end
			continue
		}
		if query[i] == '?' {
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(argIndex))
			argIndex++
		} else {
			sb.WriteByte(query[i])
		}
		i++
	}
	return sb.String()
}

// skipQuoted 返回从 i 开始的字面量、注释或美元引用块结束后的位置；
// i 处不是这些区域的起点时返回 i，未闭合时返回 len(q)
func skipQuoted(q string, i int) int {
	switch q[i] {
	case '\'', '"':
		if j := strings.IndexByte(q[i+1:], q[i]); j >= 0 {
			return i + j + 2
		}
		return len(q)
	case '-':
		if strings.HasPrefix(q[i:], "--") {
			if j := strings.IndexByte(q[i:], '\n'); j >= 0 {
				return i + j + 1
			}
			return len(q)
		}
	case '/':
		if strings.HasPrefix(q[i:], "/*") {
			if j := strings.Index(q[i+2:], "*/"); j >= 0 {
				return i + j + 4
			}
			return len(q)
		}
	case '$':
		if tag := dollarTag(q[i:]); tag != "" {
			if j := strings.Index(q[i+len(tag):], tag); j >= 0 {
				return i + 2*len(tag) + j
			}
			return len(q)
		}
	}
	return i
}

// dollarTag 解析 s 开头的 $tag$ 或 $$；$1 这类位置参数不是引用标记
func dollarTag(s string) string {
	for j := 1; j < len(s); j++ {
		c := s[j]
		switch {
		case c == '$':
			return s[:j+1]
		case c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
		case j > 1 && c >= '0' && c <= '9':
		default:
			return ""
		}
	}
	return ""
}

// IsUniqueViolation 判断错误是否为唯一键/主键冲突
//
// 优先使用驱动错误类型：
//   - lib/pq: *pq.Error，SQLSTATE 23505
//   - modernc sqlite: *sqlite.Error，扩展码 SQLITE_CONSTRAINT_UNIQUE / SQLITE_CONSTRAINT_PRIMARYKEY
//
// 无法识别类型时退回到错误消息关键字匹配。
func (d Dialect) IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if stdErrors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}

	var liteErr *sqlite.Error
	if stdErrors.As(err, &liteErr) {
		code := liteErr.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
			return true
		}
		// 未开启扩展码时只有主码，交给消息匹配
		if code&0xff != sqlite3.SQLITE_CONSTRAINT {
			return false
		}
	}

	msg := strings.ToLower(err.Error())
	switch d.name {
	case NameSQLite:
		return strings.Contains(msg, "unique constraint failed")
	case NamePostgres:
		return strings.Contains(msg, "duplicate key") ||
			strings.Contains(msg, "unique constraint")
	default:
		return strings.Contains(msg, "duplicate key") ||
			strings.Contains(msg, "unique constraint")
	}
}
