package errors

import (
	"context"
	"fmt"
	"runtime"

	"sqlwrap/logging"
)

// NewNilHandle 构造空句柄错误，kind 为被包装句柄的类别（stmt、rows、row）
func NewNilHandle(kind string) error {
	return NewError(ErrCodeNilHandle, fmt.Sprintf("无法包装 nil %s 句柄", kind)).
		WithContext("handle", kind)
}

// WrapWithLog 包装错误并记录警告日志
// 仅用于工厂层（打开连接、开启事务等）；装饰器转发的错误必须原样返回
func WrapWithLog(ctx context.Context, err error, code ErrorCode, msg string, fields ...logging.Field) error {
	if err == nil {
		return nil
	}

	_, file, line, _ := runtime.Caller(1)

	wrapped := WrapError(err, code, msg)

	allFields := append([]logging.Field{
		logging.Error(err),
		logging.String("error_code", string(code)),
		logging.String("location", fmt.Sprintf("%s:%d", file, line)),
	}, fields...)

	logging.GetLogger().Warn(ctx, msg, allFields...)

	return wrapped
}

// WrapDbError 包装工厂层的数据库错误
func WrapDbError(ctx context.Context, err error, operation string) error {
	if err == nil {
		return nil
	}

	return WrapWithLog(ctx, err, ErrCodeDatabase,
		fmt.Sprintf("数据库操作失败: %s", operation),
		logging.String("operation", operation),
	)
}

// New 创建新错误（带调用位置）
func New(code ErrorCode, msg string) error {
	_, file, line, _ := runtime.Caller(1)
	enhancedMsg := fmt.Sprintf("%s (位置: %s:%d)", msg, file, line)
	return NewError(code, enhancedMsg)
}
