package main

import (
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/akeil/notetool"
)

func doAdd(s settings, title, text string) error {
	ctl := setupController(s, nil)

	fmt.Printf("%v create %q\n", ellipsis, title)
	return ctl.Create(notetool.Draft{Title: title, Body: text})
}

func doEdit(s settings, id int64, title, text string) error {
	ctl := setupController(s, nil)

	err := ctl.Load()
	if err != nil {
		return err
	}

	n, ok := ctl.Find(id)
	if !ok {
		return fmt.Errorf("no note with id %d", id)
	}

	ctl.BeginEdit(n)
	b, _ := ctl.Editing()
	// empty flags keep the current value
	if title != "" {
		b.Title = title
	}
	if text != "" {
		b.Body = text
	}

	fmt.Printf("%v update %q\n", ellipsis, n.Title)
	return ctl.Update(b)
}

func doRm(s settings, id int64, yes bool) error {
	var confirm notetool.Confirmer = notetool.ConfirmerFunc(promptConfirm)
	if yes {
		confirm = notetool.AlwaysConfirm
	}
	ctl := setupController(s, confirm)

	deleted, err := ctl.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		fmt.Printf("Note %d was not deleted.\n", id)
	}
	return nil
}

// promptConfirm asks a yes/no question on the terminal.
func promptConfirm(question string) (bool, error) {
	p := promptui.Prompt{
		Label:     question,
		IsConfirm: true,
	}

	_, err := p.Run()
	if err == promptui.ErrAbort {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}
