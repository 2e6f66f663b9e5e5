// Package mock 提供脚本化的 Mock 对话 Provider
//
// 本包实现了 [chat.Responder] 接口，用于测试和离线开发场景，
// 无需真实的 API 凭证即可验证调用方策略。
//
// # 概述
//
// [Client] 是核心类型，提供可预测的响应行为：
//
//   - 支持固定默认响应和多轮场景脚本
//   - 支持模拟错误和响应延迟
//   - 记录所有调用详情，便于测试查验
//
// # 快速开始
//
//	client := mock.New(mock.WithResponse("Have you tried turning it off and on again?"))
//	defer client.Close()
//
//	reply, err := client.Respond(ctx, history, "my wifi is down", true)
//
// # 场景模式
//
// 场景通过 YAML 配置文件定义，按名称指定使用：
//
//	default_response: "How can I help?"
//	scenarios:
//	  - name: wifi
//	    turns:
//	      - user: "my wifi is down"
//	        agent: "Is the router's power light on?"
//	      - user: "yes"
//	        agent: "Try unplugging it for 30 seconds."
//
//	client, _ := mock.NewFromFile("testdata/scenarios.yaml")
//	_ = client.UseScenario("wifi")
package mock
