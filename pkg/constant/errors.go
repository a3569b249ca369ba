/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-10 15:30:22
 * @LastEditTime: 2026-02-10 15:30:22
 * @LastEditors: 安知鱼
 */
package constant

import "errors"

// 定义业务逻辑相关的标准错误
var (
	// ErrNotFound 表示资源未找到，可以由 Handler 转换为 404
	ErrNotFound = errors.New("资源未找到")

	// ErrForbidden 表示无权访问，可以由 Handler 转换为 403
	ErrForbidden = errors.New("操作禁止")

	// ErrConflict 表示资源冲突，可以由 Handler 转换为 409
	ErrConflict = errors.New("资源冲突")

	// ErrInternalServer 表示服务器内部错误，可以由 Handler 转换为 500
	ErrInternalServer = errors.New("内部服务器错误")

	// ErrBadRequest 表示请求参数错误，可以由 Handler 转换为 400
	ErrBadRequest = errors.New("错误的请求")

	// ErrUnauthorized 表示未授权，可以由 Handler 转换为 401
	ErrUnauthorized = errors.New("未经授权的访问")

	// ErrInvalidToken 表示无效的令牌，可以由 Handler 转换为 401
	ErrInvalidToken = errors.New("无效令牌")

	// ErrInvalidPublicID 表示无效的公共ID，可以由 Handler 转换为 400
	ErrInvalidPublicID = errors.New("无效的公共ID")

	// ErrValidationFailed 表示文档校验未通过，可以由 Handler 转换为 400 并附带问题列表
	ErrValidationFailed = errors.New("文档校验未通过")

	// ErrInvalidTransition 表示不允许的状态流转，可以由 Handler 转换为 409
	ErrInvalidTransition = errors.New("不允许的状态流转")

	// ErrUnknownBlockType 表示未注册的内容块类型，可以由 Handler 转换为 400
	ErrUnknownBlockType = errors.New("未知的内容块类型")

	// ErrSlugConflict 表示页面路径标识冲突，可以由 Handler 转换为 409
	ErrSlugConflict = errors.New("路径标识已被占用")
)
