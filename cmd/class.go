package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/nmt/internal/store"
)

var classCmd = &cobra.Command{
	Use:   "class",
	Short: "Manage classes, rosters and join codes",
}

var classCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a class",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			c, err := st.RosterRepo().CreateClass(cmd.Context(), strings.Join(args, " "), time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("Created class %d %q, join code %s\n", c.ID, c.Name, c.JoinCode)
			return nil
		})
	},
}

var classListCmd = &cobra.Command{
	Use:   "list",
	Short: "List classes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			classes, err := st.RosterRepo().Classes(cmd.Context())
			if err != nil {
				return err
			}
			if len(classes) == 0 {
				fmt.Println("No classes yet.")
				return nil
			}
			fmt.Printf("%-5s  %-30s  %-8s  %s\n", "ID", "Name", "Students", "Created")
			fmt.Println(strings.Repeat("─", 64))
			for _, c := range classes {
				fmt.Printf("%-5d  %-30s  %-8d  %s\n",
					c.ID, c.Name, c.Students, c.CreatedAt.Local().Format("2006-01-02"))
			}
			return nil
		})
	},
}

var classShowCmd = &cobra.Command{
	Use:   "show <class-id>",
	Short: "Show a class, its join code and students",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withStore(cmd, func(st *store.Store) error {
			roster := st.RosterRepo()
			c, err := roster.EnsureJoinCode(cmd.Context(), id, time.Now())
			if err != nil {
				return err
			}
			students, err := roster.Students(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Printf("Class %d: %s\n", c.ID, c.Name)
			printJoinCode(c)
			fmt.Println()
			if len(students) == 0 {
				fmt.Println("No students yet.")
				return nil
			}
			fmt.Printf("%-5s  %-32s  %s\n", "ID", "Email", "Name")
			fmt.Println(strings.Repeat("─", 64))
			for _, s := range students {
				fmt.Printf("%-5d  %-32s  %s\n", s.ID, s.Email, s.Name)
			}
			return nil
		})
	},
}

var classCodeCmd = &cobra.Command{
	Use:   "code <class-id>",
	Short: "Print the class join code, issuing a new one if expired",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		regenerate, _ := cmd.Flags().GetBool("regenerate")
		return withStore(cmd, func(st *store.Store) error {
			roster := st.RosterRepo()
			var c *store.Class
			if regenerate {
				c, err = roster.RegenerateJoinCode(cmd.Context(), id, time.Now())
			} else {
				c, err = roster.EnsureJoinCode(cmd.Context(), id, time.Now())
			}
			if err != nil {
				return err
			}
			printJoinCode(c)
			return nil
		})
	},
}

var classAddStudentCmd = &cobra.Command{
	Use:   "add-student <class-id> <email>",
	Short: "Add a student to a class",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("name")
		return withStore(cmd, func(st *store.Store) error {
			s, err := st.RosterRepo().AddStudent(cmd.Context(), id, args[1], name)
			if err != nil {
				return err
			}
			fmt.Printf("Added student %d (%s) to class %d\n", s.ID, s.Email, id)
			return nil
		})
	},
}

var classRemoveStudentCmd = &cobra.Command{
	Use:   "remove-student <class-id> <student-id>",
	Short: "Remove a student from a class",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		classID, err := parseID(args[0])
		if err != nil {
			return err
		}
		studentID, err := parseID(args[1])
		if err != nil {
			return err
		}
		return withStore(cmd, func(st *store.Store) error {
			if err := st.RosterRepo().RemoveStudent(cmd.Context(), classID, studentID); err != nil {
				return err
			}
			fmt.Printf("Removed student %d from class %d\n", studentID, classID)
			return nil
		})
	},
}

func init() {
	classCodeCmd.Flags().Bool("regenerate", false, "Always issue a fresh code")
	classAddStudentCmd.Flags().String("name", "", "Student name")

	classCmd.AddCommand(classCreateCmd)
	classCmd.AddCommand(classListCmd)
	classCmd.AddCommand(classShowCmd)
	classCmd.AddCommand(classCodeCmd)
	classCmd.AddCommand(classAddStudentCmd)
	classCmd.AddCommand(classRemoveStudentCmd)
}

// withStore runs fn against the configured store with console logging.
func withStore(cmd *cobra.Command, fn func(st *store.Store) error) error {
	e, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()
	st, err := e.store()
	if err != nil {
		return err
	}
	return fn(st)
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func printJoinCode(c *store.Class) {
	if c.CodeExpiresAt == nil {
		fmt.Printf("Join code: %s\n", c.JoinCode)
		return
	}
	fmt.Printf("Join code: %s (valid until %s)\n", c.JoinCode, c.CodeExpiresAt.Local().Format("15:04"))
}
