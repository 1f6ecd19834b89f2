package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	robot "github.com/iwtcode/robotAdapter"
	"github.com/iwtcode/robotAdapter/internal/llm"
	"github.com/joho/godotenv"
)

// toolBridge передает вызовы инструментов от LLM-сессии на сервер.
type toolBridge struct {
	client *robot.Client
}

func (b *toolBridge) ExecuteTool(ctx context.Context, name string, arguments json.RawMessage) (string, error) {
	if len(arguments) == 0 {
		arguments = json.RawMessage("{}")
	}
	resp, err := b.client.CallTool(ctx, name, arguments)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func main() {
	_ = godotenv.Load()

	cfg := robot.Load()
	client := robot.New(cfg)
	ctx := context.Background()

	apiKey := cfg.APIKey()
	useLLM := apiKey != ""

	fmt.Println("Robot Agent CLI — type 'exit' to quit.")
	if useLLM {
		fmt.Println("Using OpenAI:", cfg.OpenAI.Model)
	} else {
		fmt.Println("Using naive parser mode (no " + cfg.OpenAI.APIKeyEnv + ")")
	}
	fmt.Println("Commands: :setobj ID X Y Z | :setzone ID X Y Z [tol] | :showcfg | :map | :make map | move OBJECT to ZONE | status")

	var session *llm.Session
	if useLLM {
		session = llm.NewSession(apiKey, cfg.OpenAI.Model, &toolBridge{client: client})
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("» ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if lower := strings.ToLower(input); lower == "exit" || lower == "quit" {
			break
		}

		// Команды с двоеточием обрабатываются локально, минуя LLM.
		if strings.HasPrefix(input, ":map") || strings.HasPrefix(input, ":make map") {
			asciiMap, err := client.GetMap(ctx)
			if err != nil {
				fmt.Println("[map error]", err)
				continue
			}
			fmt.Println(asciiMap)
			continue
		}
		if strings.HasPrefix(input, ":") || !useLLM {
			printJSON(naiveParseAndCall(ctx, client, input))
			continue
		}

		reply, err := session.Send(ctx, input)
		if err != nil {
			fmt.Println("[llm error]", err)
			continue
		}
		if reply == "" {
			reply = "(no content)"
		}
		fmt.Println(reply)
	}
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println("[encode error]", err)
		return
	}
	fmt.Println(string(data))
}
