// Package basic 提供 database/sql 句柄的委托式装饰器与最小工厂实现
//
// Stmt、Rows、Row 各自独占一个底层句柄，所有继承的操作原样转发：
// 参数不变、返回值不变、错误不做包装。装饰器本身不持有任何状态，
// 并发安全性与底层句柄一致。
package basic

import (
	"reflect"

	"sqlwrap/errors"
)

// 句柄类别，用于空句柄错误
const (
	kindStmt = "stmt"
	kindRows = "rows"
	kindRow  = "row"
)

// isNilHandle 判断接口值是否为 nil，包括接口内部持有的 typed nil 指针
func isNilHandle(h any) bool {
	if h == nil {
		return true
	}
	v := reflect.ValueOf(h)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

func nilHandle(kind string) error {
	return errors.NewNilHandle(kind)
}
