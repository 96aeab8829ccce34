package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oakmund/finsight/internal/logger"
	"github.com/oakmund/finsight/internal/session"
	"github.com/oakmund/finsight/internal/storage/transcript"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	log := logger.Must(debug)
	defer log.Sync()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	asst := buildAssistant(cfg, nil, log)

	archive, err := buildArchive(cfg)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}

	// One session per chat run; the id doubles as the transcript name.
	sess := session.New("chat_" + time.Now().Format("20060102_150405"))

	fmt.Println("🤖 FINSIGHT Financial Assistant")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("I can help you with:")
	fmt.Println("📊 Stock analysis and prices")
	fmt.Println("💼 Portfolio management and performance")
	fmt.Println("📈 Market news and trends")
	fmt.Println("💱 Currency conversion")
	fmt.Println("⚠️ Risk assessment")
	fmt.Println("\n✨ Conversation memory enabled - I remember our discussion!")
	fmt.Println("Type 'quit' to exit or ask your financial question!")
	fmt.Println(strings.Repeat("=", 50))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n💬 Your question: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(input) {
		case "quit", "exit", "bye":
			fmt.Println("Goodbye! 👋")
			return archiveSession(archive, sess, log)
		case "":
			continue
		}

		fmt.Println("\n🤔 Processing your request...")
		response := asst.Respond(cmd.Context(), input, sess)
		fmt.Printf("\n📝 Answer:\n%s\n", response)
	}

	return archiveSession(archive, sess, log)
}

// archiveSession exports the transcript when archiving is configured and the
// conversation had any turns.
func archiveSession(archive transcript.Store, sess *session.Session, log *zap.Logger) error {
	if archive == nil || sess.Len() == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := transcript.Archive(ctx, archive, sess); err != nil {
		log.Warn("failed to archive transcript", zap.Error(err))
		return nil
	}
	log.Info("transcript archived", zap.String("session", sess.ID))
	return nil
}
