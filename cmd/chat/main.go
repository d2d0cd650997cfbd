package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"relaychat/internal/client"
	"relaychat/internal/domain"
	"relaychat/internal/i18n"
	"relaychat/internal/infra"
)

// Terminal chat client. One process owns one session; the session lives and
// dies with the process.
func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	session := domain.NewSession(i18n.Normalize(cfg.DefaultLocale))
	dispatcher := client.NewDispatcher(cfg.BackendBaseURL)
	chat := client.NewChat(session, dispatcher, cfg.TrialModel, cfg.PaidModel)

	fmt.Println(i18n.T(chat.Locale(), i18n.KeyTrialBanner))
	fmt.Println(i18n.T(chat.Locale(), i18n.KeyEmptyState))

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("[%s %d/%d] > ", chat.Tier(), chat.WordsUsed(), domain.DefaultTrialWordLimit)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue
		case line == "/quit":
			return
		case strings.HasPrefix(line, "/locale "):
			code := chat.SetLocale(strings.TrimSpace(strings.TrimPrefix(line, "/locale ")))
			fmt.Println("locale:", code)
			continue
		case strings.HasPrefix(line, "/pay"):
			amount := 199.0
			if arg := strings.TrimSpace(strings.TrimPrefix(line, "/pay")); arg != "" {
				if v, err := strconv.ParseFloat(arg, 64); err == nil {
					amount = v
				}
			}
			msg, err := chat.PayAmount(ctx, amount)
			if err != nil {
				logger.Error().Err(err).Msg("payment call failed")
			} else {
				fmt.Println(msg)
			}
			fmt.Println("tier:", chat.Tier())
			continue
		case line == "/sbp":
			redirect, err := chat.PayInstant(ctx)
			if err != nil {
				logger.Error().Err(err).Msg("checkout call failed")
			} else {
				fmt.Println(i18n.T(chat.Locale(), i18n.KeyPaySBP), "->", redirect)
			}
			fmt.Println("tier:", chat.Tier())
			continue
		case line == "/autorenew":
			fmt.Println(chat.EnableAutoRenew())
			continue
		}

		fmt.Println(i18n.T(chat.Locale(), i18n.KeySending))
		msg, err := chat.Send(ctx, line)
		switch {
		case errors.Is(err, domain.ErrQuotaExceeded):
			fmt.Println(i18n.T(chat.Locale(), i18n.KeyQuotaExceeded))
		case errors.Is(err, domain.ErrSendInFlight):
			fmt.Println(i18n.T(chat.Locale(), i18n.KeySending))
		case err != nil:
			logger.Error().Err(err).Msg("send failed")
		default:
			fmt.Printf("%s: %s\n", msg.Role, msg.Content)
		}
	}
}
