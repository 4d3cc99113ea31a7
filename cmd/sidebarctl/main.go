package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/WangWilly/xGuild/pkgs/commonpkg/clients/sidebarclient"
	"github.com/gookit/color"
	"github.com/tidwall/gjson"
)

func main() {
	var addr string
	var profileId string
	var raw bool
	var health bool

	flag.StringVar(&addr, "addr", sidebarclient.DEFAULT_BASE_URL, "base url of the xGuild server")
	flag.StringVar(&profileId, "profile", os.Getenv("XGUILD_PROFILE"), "profile id to view the sidebar as")
	flag.BoolVar(&raw, "raw", false, "print the raw json")
	flag.BoolVar(&health, "health", false, "only check that the server and its database are up")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	client := sidebarclient.New(addr, profileId)

	if health {
		if err := client.Health(ctx); err != nil {
			color.Error.Println(err)
			os.Exit(1)
		}
		color.Success.Println("ok")
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: sidebarctl [-addr url] [-profile id] [-raw] <serverId>")
		fmt.Fprintln(os.Stderr, "       sidebarctl [-addr url] -health")
		os.Exit(2)
	}

	body, err := client.GetSidebar(ctx, flag.Arg(0))
	if err != nil {
		color.Error.Println(err)
		os.Exit(1)
	}
	if raw {
		fmt.Println(string(body))
		return
	}
	printSidebar(body)
}

func printSidebar(body []byte) {
	doc := gjson.ParseBytes(body)

	role := doc.Get("role").String()
	if role == "" {
		role = "not a member"
	}
	color.Bold.Println(doc.Get("header.serverName").String())
	fmt.Println(color.FgGray.Render("viewing as " + role))

	doc.Get("sections").ForEach(func(_, section gjson.Result) bool {
		fmt.Println()
		color.FgLightBlue.Println(section.Get("label").String())

		section.Get("channels").ForEach(func(_, row gjson.Result) bool {
			fmt.Printf("  [%s] %s\n", row.Get("icon").String(), row.Get("channel.name").String())
			return true
		})
		section.Get("members").ForEach(func(_, row gjson.Result) bool {
			name := row.Get("member.profile.name").String()
			if icon := row.Get("icon").String(); icon != "" {
				name += " " + color.FgYellow.Render("["+icon+"]")
			}
			fmt.Println("  " + name)
			return true
		})

		if section.Get("showProgress").Bool() && doc.Get("progress").IsObject() {
			p := doc.Get("progress")
			fmt.Printf("  progress %d/%d (%d%%)\n",
				p.Get("completed").Int(), p.Get("total").Int(), p.Get("percent").Int())
		}
		return true
	})
}
