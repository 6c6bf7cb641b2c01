// Command newsctl is an operator CLI for a running news portal. It
// logs in with credentials from the environment, performs one command,
// and exits.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/divyanshyadav2828/DIGITAL-DESK-2/pkg/client"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	url := os.Getenv("NEWSPORTAL_URL")
	if url == "" {
		url = "http://localhost:3000"
	}

	c, err := client.New(url)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	command := strings.ToUpper(os.Args[1])
	args := os.Args[2:]

	switch command {
	case "HEALTH":
		if err := c.Health(); err != nil {
			log.Fatal(err)
		}
		fmt.Println("OK")

	case "NEWS":
		items, err := c.News(partitionArg(args))
		if err != nil {
			log.Fatal(err)
		}
		printJSON(items)

	case "CATEGORIES":
		names, err := c.Categories(partitionArg(args))
		if err != nil {
			log.Fatal(err)
		}
		printJSON(names)

	case "ADD_CATEGORY":
		if len(args) < 2 {
			log.Fatal("Usage: newsctl ADD_CATEGORY <partition> <name>")
		}
		login(c)
		names, err := c.CreateCategory(args[0], args[1])
		if err != nil {
			log.Fatal(err)
		}
		printJSON(names)

	case "DEL_CATEGORY":
		if len(args) < 2 {
			log.Fatal("Usage: newsctl DEL_CATEGORY <partition> <name>")
		}
		login(c)
		if err := c.DeleteCategory(args[0], args[1]); err != nil {
			log.Fatal(err)
		}
		fmt.Println("OK")

	case "DEL_NEWS":
		if len(args) < 2 {
			log.Fatal("Usage: newsctl DEL_NEWS <partition> <id>")
		}
		login(c)
		if err := c.DeleteNews(args[0], args[1]); err != nil {
			log.Fatal(err)
		}
		fmt.Println("OK")

	case "PUBLISH":
		// PUBLISH <partition> <heading> <source> <category> [content]
		if len(args) < 4 {
			log.Fatal("Usage: newsctl PUBLISH <partition> <heading> <source> <category> [content]")
		}
		login(c)
		draft := client.NewsDraft{Heading: args[1], Source: args[2], Category: args[3]}
		if len(args) > 4 {
			draft.Content = strings.Join(args[4:], " ")
		}
		item, err := c.CreateNews(args[0], draft)
		if err != nil {
			log.Fatal(err)
		}
		printJSON(item)

	case "USERS":
		login(c)
		infos, err := c.Users()
		if err != nil {
			log.Fatal(err)
		}
		printJSON(infos)

	case "EXPORT":
		login(c)
		raw, err := c.Export()
		if err != nil {
			log.Fatal(err)
		}
		var pretty any
		if err := json.Unmarshal(raw, &pretty); err != nil {
			log.Fatal(err)
		}
		printJSON(pretty)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func partitionArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "global"
}

// login authenticates using the environment credentials. Commands that
// only read public data never call it.
func login(c *client.Client) {
	user := os.Getenv("NEWSPORTAL_USER")
	pass := os.Getenv("NEWSPORTAL_PASSWORD")
	if user == "" || pass == "" {
		log.Fatal("NEWSPORTAL_USER and NEWSPORTAL_PASSWORD must be set for this command")
	}
	if _, err := c.Login(user, pass); err != nil {
		log.Fatalf("Login failed: %v", err)
	}
}

func printUsage() {
	fmt.Println("newsctl - operator CLI for the news portal")
	fmt.Println("\nUsage:")
	fmt.Println("  newsctl HEALTH")
	fmt.Println("  newsctl NEWS [partition]")
	fmt.Println("  newsctl CATEGORIES [partition]")
	fmt.Println("  newsctl ADD_CATEGORY <partition> <name>")
	fmt.Println("  newsctl DEL_CATEGORY <partition> <name>")
	fmt.Println("  newsctl DEL_NEWS <partition> <id>")
	fmt.Println("  newsctl PUBLISH <partition> <heading> <source> <category> [content]")
	fmt.Println("  newsctl USERS")
	fmt.Println("  newsctl EXPORT")
	fmt.Println("\nEnvironment Variables:")
	fmt.Println("  NEWSPORTAL_URL        Portal address (default: http://localhost:3000)")
	fmt.Println("  NEWSPORTAL_USER       Login for mutating commands")
	fmt.Println("  NEWSPORTAL_PASSWORD   Password for mutating commands")
}

func printJSON(v any) {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(v)
		return
	}
	fmt.Println(string(bytes))
}
